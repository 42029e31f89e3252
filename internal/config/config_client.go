package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the plan server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Mode is [ModeRemote] or [ModeLocal].
	Mode string
	// ExportDir receives exported documents.
	ExportDir string
	// Adapter contains the plan server address and timeout (remote mode).
	Adapter ClientAdapter
	// Storage contains the local database settings (local mode).
	Storage DB
	// Generation contains the generation service settings (local mode).
	Generation Generation
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ClientView maps the structured config onto [ClientConfig].
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		Mode:      cfg.Client.Mode,
		ExportDir: cfg.Client.ExportDir,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage:    cfg.Storage.DB,
		Generation: cfg.Generation,
	}
}
