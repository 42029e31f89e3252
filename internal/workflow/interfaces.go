// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package workflow

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

// Generator produces plan content for a draft.
type Generator interface {
	Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error)
}

// PlanStore persists saved plans.
type PlanStore interface {
	// List returns plans newest first, filtered by search when it is not empty.
	List(ctx context.Context, search string) ([]models.PlanRecord, error)
	// Insert saves a plan and returns it with ID and CreatedAt assigned.
	Insert(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error)
	// DeleteByID fails with a store error when id does not exist.
	DeleteByID(ctx context.Context, id string) error
}

// Confirmer asks the user a yes/no question. It may block until the user
// answers; a cancelled ctx counts as "no".
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) bool
}

// ConfirmFunc adapts a function to [Confirmer].
type ConfirmFunc func(ctx context.Context, prompt Prompt) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt Prompt) bool { return f(ctx, prompt) }
