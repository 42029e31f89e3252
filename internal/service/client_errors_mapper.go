// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package service

import (
	"errors"
	"fmt"

	"github.com/divinoviana/planoespecialindividualizado/internal/adapter"
	"github.com/divinoviana/planoespecialindividualizado/internal/app"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// mapPlanAdapterError translates a transport error of a plan operation into
// the models error kinds. Anything that is not a validation failure is a
// *models.StoreError for op.
func mapPlanAdapterError(op string, err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Kind == app.KindValidation || errors.Is(err, adapter.ErrBadRequest):
			return &models.ValidationError{Fields: httpErr.Fields, Reason: httpErr.Message}
		case httpErr.Kind == app.KindNotFound || errors.Is(err, adapter.ErrNotFound):
			return models.NewStoreError(op, fmt.Errorf("%w: %w", models.ErrPlanNotFound, err))
		}
	}

	return models.NewStoreError(op, err)
}

// mapGenerationAdapterError translates a transport error of a generation
// request. Validation failures keep their kind, everything else becomes a
// *models.GenerationError carrying the server reason when there is one.
func mapGenerationAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) {
		return models.NewGenerationError("server unreachable", err)
	}

	if httpErr.Kind == app.KindValidation || errors.Is(err, adapter.ErrBadRequest) {
		return &models.ValidationError{Fields: httpErr.Fields, Reason: httpErr.Message}
	}

	reason := ErrUnexpectedAdapter.Error()
	if httpErr.Kind == app.KindGeneration && httpErr.Message != "" {
		reason = httpErr.Message
	}
	return models.NewGenerationError(reason, err)
}
