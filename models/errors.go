// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for matching error kinds with errors.Is.
var (
	ErrGeneration = errors.New("generation error")
	ErrStore      = errors.New("store error")
	ErrValidation = errors.New("validation error")
	ErrConfig     = errors.New("config error")

	ErrPlanNotFound       = errors.New("plan not found")
	ErrMissingContentKeys = errors.New("missing content keys")
	ErrEmptyAttachment    = errors.New("attachment data is empty")
)

// ReasonInvalidFormat is the [GenerationError] reason for malformed or incomplete model output.
const ReasonInvalidFormat = "invalid format"

// GenerationError reports a failed plan generation: unreachable service,
// rejected credential or a response that is not the expected JSON object.
type GenerationError struct {
	Reason string
	Err    error
}

// NewGenerationError builds a *GenerationError.
func NewGenerationError(reason string, err error) *GenerationError {
	return &GenerationError{Reason: reason, Err: err}
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Reason, e.Err)
	}
	return "generation error: " + e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is matches [ErrGeneration].
func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }

// StoreError reports a failed list, get, insert or delete against plan storage.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError builds a *StoreError.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
	}
	return "store error: " + e.Op
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is matches [ErrStore].
func (e *StoreError) Is(target error) bool { return target == ErrStore }

// ValidationError lists required input fields that are empty or invalid.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "required fields are empty"
	}
	if len(e.Fields) == 0 {
		return "validation error: " + reason
	}
	return fmt.Sprintf("validation error: %s: %s", reason, strings.Join(e.Fields, ", "))
}

// Is matches [ErrValidation].
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConfigError reports a missing or invalid configuration value detected at construction time.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error: %s: %v", e.Field, e.Err)
	}
	return "config error: " + e.Field + " is required"
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is matches [ErrConfig].
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
