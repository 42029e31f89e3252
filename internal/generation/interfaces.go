// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package generation turns a plan draft into generated plan content by
// calling a generative AI service.
//
// The service is trusted with respect to content but not format: responses
// are unwrapped from markdown code fences and must decode to a JSON object
// holding every key of [models.ContentFieldKeys], otherwise a
// *models.GenerationError with reason "invalid format" is returned.
package generation

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator produces plan content for a draft.
type Generator interface {
	// Generate builds the prompt for draft, calls the AI service and returns
	// the parsed content. Every failure is a *models.GenerationError.
	Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error)
}
