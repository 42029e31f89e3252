// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package generation

import "errors"

var (
	ErrEmptyResponse  = errors.New("empty model response")
	ErrBlocked        = errors.New("prompt blocked by the service")
	ErrUnauthorized   = errors.New("generation service rejected the credential")
	ErrServiceFailure = errors.New("generation service failure")
)

// Reasons attached to *models.GenerationError values built by this package.
const (
	reasonRequest = "request failed"
	reasonAuth    = "authentication failed"
	reasonService = "service error"
	reasonPrompt  = "prompt rendering failed"
)
