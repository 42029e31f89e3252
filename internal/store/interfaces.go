// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package store is the plan persistence layer: a single "plans" table in
// PostgreSQL (server) or SQLite (server or local client).
//
// Every repository failure is returned as a *models.StoreError wrapping one
// of the sentinels in errors.go, so callers can match both the kind
// ([models.ErrStore]) and the cause (e.g. [models.ErrPlanNotFound]).
package store

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PlanRepository persists [models.PlanRecord] values.
type PlanRepository interface {
	// List returns saved plans ordered by creation time, newest first. A
	// non-empty search keeps only plans whose student or class name contains
	// it, case-insensitively.
	List(ctx context.Context, search string) ([]models.PlanRecord, error)

	// Get returns the plan with the given id.
	Get(ctx context.Context, id string) (models.PlanRecord, error)

	// Insert stores plan with a freshly assigned ID and CreatedAt, ignoring
	// any values already present, and returns the stored record.
	Insert(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error)

	// DeleteByID permanently removes a plan. A missing id is an error
	// wrapping [models.ErrPlanNotFound].
	DeleteByID(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The store never retries by itself; the classification is logged.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces new plan identifiers.
type IDGenerator interface {
	Generate() string
}
