package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

// ── list ─────────────────────────────────────────────────────────────────────

func TestListPlans_Success(t *testing.T) {
	// Arrange
	th := newTestHandler(t)
	th.plans.EXPECT().List(gomock.Any(), "joão").Return([]models.PlanRecord{storedPlan()}, nil)

	// Act
	rr := th.do(t, http.MethodGet, "/api/plans?search=jo%C3%A3o", nil)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	resp := decodeBody[models.PlanListResponse](t, rr)
	assert.Equal(t, 1, resp.Length)
	assert.Equal(t, "plan-1", resp.Plans[0].ID)
}

func TestListPlans_StoreError(t *testing.T) {
	th := newTestHandler(t)
	th.plans.EXPECT().List(gomock.Any(), "").
		Return(nil, models.NewStoreError("list", errors.New("connection refused")))

	rr := th.do(t, http.MethodGet, "/api/plans", nil)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeBody[models.ErrorResponse](t, rr)
	assert.Equal(t, "store", resp.Kind)
	assert.NotContains(t, resp.Error, "connection refused")
}

// ── create ───────────────────────────────────────────────────────────────────

func TestCreatePlan_Success(t *testing.T) {
	th := newTestHandler(t)
	plan := storedPlan()
	plan.ID, plan.CreatedAt = "", nil

	th.plans.EXPECT().Insert(gomock.Any(), plan).Return(storedPlan(), nil)

	rr := th.do(t, http.MethodPost, "/api/plans", plan)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/plans/plan-1", rr.Header().Get("Location"))
	saved := decodeBody[models.PlanRecord](t, rr)
	assert.Equal(t, "plan-1", saved.ID)
}

func TestCreatePlan_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	rr := th.do(t, http.MethodPost, "/api/plans", "{broken")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeBody[models.ErrorResponse](t, rr)
	assert.Equal(t, "validation", resp.Kind)
	assert.Equal(t, "invalid data provided", resp.Error)
}

func TestCreatePlan_ValidationError(t *testing.T) {
	th := newTestHandler(t)
	th.plans.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(models.PlanRecord{}, &models.ValidationError{Fields: []string{"student_name"}})

	rr := th.do(t, http.MethodPost, "/api/plans", models.PlanRecord{})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeBody[models.ErrorResponse](t, rr)
	assert.Equal(t, []string{"student_name"}, resp.Fields)
}

// ── get / delete ─────────────────────────────────────────────────────────────

func TestGetPlan(t *testing.T) {
	th := newTestHandler(t)
	th.plans.EXPECT().Get(gomock.Any(), "plan-1").Return(storedPlan(), nil)
	th.plans.EXPECT().Get(gomock.Any(), "missing").
		Return(models.PlanRecord{}, models.NewStoreError("get", models.ErrPlanNotFound))

	rr := th.do(t, http.MethodGet, "/api/plans/plan-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ler textos curtos", decodeBody[models.PlanRecord](t, rr).Content.Objectives)

	rr = th.do(t, http.MethodGet, "/api/plans/missing", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not_found", decodeBody[models.ErrorResponse](t, rr).Kind)
}

func TestDeletePlan(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing id", err: models.NewStoreError("delete", models.ErrPlanNotFound), wantStatus: http.StatusNotFound},
		{name: "store failure", err: models.NewStoreError("delete", errors.New("disk full")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.plans.EXPECT().DeleteByID(gomock.Any(), "plan-1").Return(tt.err)

			rr := th.do(t, http.MethodDelete, "/api/plans/plan-1", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── print / export ───────────────────────────────────────────────────────────

func TestPrintPlan_Formats(t *testing.T) {
	tests := []struct {
		query           string
		wantContentType string
		wantContains    string
	}{
		{query: "", wantContentType: "text/html; charset=utf-8", wantContains: "<!DOCTYPE html>"},
		{query: "?format=md", wantContentType: "text/markdown; charset=utf-8", wantContains: "# Plano de Ensino Individualizado (PEI)"},
		{query: "?format=txt", wantContentType: "text/plain; charset=utf-8", wantContains: "Estudante: João Silva"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			th := newTestHandler(t)
			th.plans.EXPECT().Get(gomock.Any(), "plan-1").Return(storedPlan(), nil)

			rr := th.do(t, http.MethodGet, "/api/plans/plan-1/print"+tt.query, nil)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantContentType, rr.Header().Get("Content-Type"))
			assert.Empty(t, rr.Header().Get("Content-Disposition"))
			assert.Contains(t, rr.Body.String(), tt.wantContains)
			assert.Contains(t, rr.Body.String(), "04/05/2026")
		})
	}
}

func TestPrintPlan_UnsupportedFormat(t *testing.T) {
	for _, format := range []string{"pdf", "xlsx"} {
		th := newTestHandler(t)

		rr := th.do(t, http.MethodGet, "/api/plans/plan-1/print?format="+format, nil)

		require.Equal(t, http.StatusBadRequest, rr.Code, format)
		assert.Equal(t, "unsupported print format", decodeBody[models.ErrorResponse](t, rr).Error)
	}
}

func TestExportPlan(t *testing.T) {
	th := newTestHandler(t)
	th.plans.EXPECT().Get(gomock.Any(), "plan-1").Return(storedPlan(), nil)

	rr := th.do(t, http.MethodGet, "/api/plans/plan-1/export.xlsx", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="pei-joao-silva.xlsx"`, rr.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "PK"), "xlsx is a zip archive")
}
