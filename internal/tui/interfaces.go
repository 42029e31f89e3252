// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package tui

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/internal/workflow"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// Workflow is the controller the TUI drives. [workflow.Controller]
// implements it.
type Workflow interface {
	Snapshot() workflow.Snapshot
	DismissError()

	Start(ctx context.Context) error
	Refresh(ctx context.Context) error
	Search(ctx context.Context, query string) error
	NewPlan() error
	Select(id string) error

	UpdateDraft(draft models.DraftInput) error
	Submit(ctx context.Context, draft models.DraftInput) error
	CancelEdit(ctx context.Context) error
	BackToEdit(ctx context.Context) error
	Save(ctx context.Context) error

	Back(ctx context.Context) error
	Delete(ctx context.Context) error

	ConfirmQuit(ctx context.Context) (bool, error)
}
