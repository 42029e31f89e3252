// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package config provides configuration loading, merging, and validation
// facilities for the plan server and the terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables (PEI_ prefix)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] and [GetClientConfig].
package config
