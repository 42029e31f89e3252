// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package service implements the plan use cases on top of the store, the
// generation client and the client transport adapter.
//
// Server-side services (plan, generation, app info) are wrapped with
// validation decorators so that invalid input is rejected with a
// *models.ValidationError before any storage or network call. Client-side
// services expose the same interfaces over [adapter.ServerAdapter] and map
// transport errors back into the models error kinds, so callers cannot tell
// a remote service from a local one.
package service

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PlanService lists, reads, saves and deletes plans.
type PlanService interface {
	List(ctx context.Context, search string) ([]models.PlanRecord, error)
	Get(ctx context.Context, id string) (models.PlanRecord, error)
	Insert(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

// GenerationService produces plan content from a draft.
type GenerationService interface {
	Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfoResponse
}
