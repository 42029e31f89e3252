// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package workflow

import "errors"

var (
	// ErrBusy is returned when an operation is requested while another one
	// is still waiting for the generator, the store or the user.
	ErrBusy = errors.New("another operation is in progress")

	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current state.
	ErrInvalidTransition = errors.New("operation not allowed in current state")

	// ErrNoPreview is returned by Save when no generated content is held.
	ErrNoPreview = errors.New("no generated content to save")

	// ErrRefreshFailed wraps a list failure that follows a successful save or
	// delete. The mutation itself is committed.
	ErrRefreshFailed = errors.New("plan list refresh failed")
)
