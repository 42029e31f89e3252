// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the user quits or
	// ctx is cancelled.
	Run(ctx context.Context) error
}

// UI is the presentation the client runs.
type UI interface {
	Run(ctx context.Context) error
}
