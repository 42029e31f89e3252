// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package config

import (
	"fmt"
	"strings"
)

// validate normalizes and checks the merged [StructuredConfig]: it resolves
// the storage driver from the DSN when none was given and rejects unknown
// drivers and client modes.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverFromDSN(cfg.Storage.DB.DSN)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	switch cfg.Client.Mode {
	case ModeRemote, ModeLocal:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidClientConfigs, cfg.Client.Mode)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Mode {
	case ModeRemote:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	case ModeLocal:
		if cfg.Storage.DSN == "" || cfg.Storage.Driver != DriverSQLite {
			return fmt.Errorf("%w: local mode needs a sqlite database", ErrInvalidStorageConfigs)
		}
	default:
		return ErrInvalidClientConfigs
	}

	return nil
}

// DriverFromDSN returns [DriverPostgres] for postgres URLs and keyword DSNs,
// [DriverSQLite] otherwise.
func DriverFromDSN(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"),
		strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}
