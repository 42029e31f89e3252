// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package server

// Server is the lifecycle of the plan API server.
type Server interface {
	// RunServer serves requests until a stop signal arrives, then drains
	// in-flight requests before returning.
	RunServer()

	// Shutdown stops accepting requests and waits for the active ones.
	Shutdown()
}
