// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package validators checks plan input before it reaches storage or the
// generation service.
//
// A Validator accepts the value to check and, optionally, the names of the
// fields to restrict the check to. Failures are reported as
// *models.ValidationError listing the offending fields, so every caller can
// surface them the same way.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
