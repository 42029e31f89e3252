// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package client implements the interactive client application runtime.
//
// It wires the plan services for the configured mode (remote plan server or
// local database with direct generation), the workflow controller and the
// terminal UI into a single process lifecycle.
package client
