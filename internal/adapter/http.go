package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/divinoviana/planoespecialindividualizado/internal/config"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/utils"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

const (
	plansPath    = "/api/plans"
	planPath     = "/api/plans/{id}"
	generatePath = "/api/generate"
	versionPath  = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from cfg.HTTPAddress, a missing
// scheme defaults to http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("func", "NewHTTPServerAdapter").Str("base_url", baseURL).Msg("server adapter configured")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListPlans implements [ServerAdapter] via GET /api/plans?search=.
func (h *httpServerAdapter) ListPlans(ctx context.Context, search string) ([]models.PlanRecord, error) {
	var result models.PlanListResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if search = strings.TrimSpace(search); search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get(plansPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list plans: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Plans == nil {
		result.Plans = []models.PlanRecord{}
	}
	return result.Plans, nil
}

// GetPlan implements [ServerAdapter] via GET /api/plans/{id}.
func (h *httpServerAdapter) GetPlan(ctx context.Context, id string) (models.PlanRecord, error) {
	var plan models.PlanRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&plan).
		Get(planPath)
	if err != nil {
		return models.PlanRecord{}, fmt.Errorf("%w: get plan: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlanRecord{}, err
	}

	return plan, nil
}

// CreatePlan implements [ServerAdapter] via POST /api/plans.
func (h *httpServerAdapter) CreatePlan(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error) {
	var saved models.PlanRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(plan).
		SetResult(&saved).
		Post(plansPath)
	if err != nil {
		return models.PlanRecord{}, fmt.Errorf("%w: create plan: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlanRecord{}, err
	}
	if !saved.IsSaved() {
		return models.PlanRecord{}, fmt.Errorf("%w: create plan: response without id", ErrInvalidBody)
	}

	return saved, nil
}

// DeletePlan implements [ServerAdapter] via DELETE /api/plans/{id}.
func (h *httpServerAdapter) DeletePlan(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(planPath)
	if err != nil {
		return fmt.Errorf("%w: delete plan: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// Generate implements [ServerAdapter] via POST /api/generate.
func (h *httpServerAdapter) Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error) {
	var result models.GenerateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&result).
		Post(generatePath)
	if err != nil {
		return models.ContentFields{}, fmt.Errorf("%w: generate: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContentFields{}, err
	}

	return result.Content, nil
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.BuildInfoResponse, error) {
	var info models.BuildInfoResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return models.BuildInfoResponse{}, fmt.Errorf("%w: version: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfoResponse{}, err
	}

	return info, nil
}
