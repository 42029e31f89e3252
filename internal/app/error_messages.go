// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package app contains the API vocabulary shared by the plan server handlers
// and the client adapter: error kinds carried in [models.ErrorResponse] and
// the human-readable messages written next to them.
package app

// Error kinds of [models.ErrorResponse.Kind]. The client maps each kind back
// to the matching error type in models.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindGeneration = "generation"
	KindStore      = "store"
	KindInternal   = "internal"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPlanNotFound is returned when a get or delete targets an unknown plan id.
	MsgPlanNotFound = "plan not found"

	// MsgStoreFailed is returned when the plan storage rejects an operation.
	MsgStoreFailed = "plan storage failure"

	// MsgUnsupportedFormat is returned by the print endpoint for an unknown format.
	MsgUnsupportedFormat = "unsupported print format"

	// MsgRenderFailed is returned when a printable document cannot be produced.
	MsgRenderFailed = "document rendering failed"
)
