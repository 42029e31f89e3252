// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

// Package adapter is the client transport to the plan server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// resty. Non-2xx responses are decoded into *[HTTPError], which wraps one of
// the status sentinels in errors.go so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the plan server.
type ServerAdapter interface {
	// ListPlans fetches saved plans, newest first, optionally filtered by
	// student or class name.
	ListPlans(ctx context.Context, search string) ([]models.PlanRecord, error)

	// GetPlan fetches a single saved plan.
	GetPlan(ctx context.Context, id string) (models.PlanRecord, error)

	// CreatePlan saves plan and returns the stored record with its server
	// assigned ID and CreatedAt.
	CreatePlan(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error)

	// DeletePlan permanently removes a plan.
	DeletePlan(ctx context.Context, id string) error

	// Generate asks the server to produce plan content for draft.
	Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error)

	// Version returns the server build info.
	Version(ctx context.Context) (models.BuildInfoResponse, error)
}
