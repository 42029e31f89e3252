package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/divinoviana/planoespecialindividualizado/internal/app"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

func TestGenerate_Success(t *testing.T) {
	th := newTestHandler(t)
	draft := models.DraftInput{PlanMetadata: fullMetadata(), ExtraContext: "gosta de música"}
	want := models.ContentFields{Methodologies: "música como mediadora"}

	th.generation.EXPECT().Generate(gomock.Any(), draft).Return(want, nil)

	rr := th.do(t, http.MethodPost, "/api/generate", draft)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, decodeBody[models.GenerateResponse](t, rr).Content)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantError  string
	}{
		{
			name:       "invalid format",
			err:        models.NewGenerationError(models.ReasonInvalidFormat, errors.New("unexpected end of JSON input")),
			wantStatus: http.StatusBadGateway,
			wantKind:   "generation",
			wantError:  models.ReasonInvalidFormat,
		},
		{
			name:       "validation",
			err:        &models.ValidationError{Fields: []string{"subject"}},
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantError:  "validation error: required fields are empty: subject",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "internal",
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.generation.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.ContentFields{}, tt.err)

			rr := th.do(t, http.MethodPost, "/api/generate", models.DraftInput{})

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeBody[models.ErrorResponse](t, rr)
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	rr := th.do(t, http.MethodPost, "/api/generate", "not json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetServerVersion(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.BuildInfoResponse{Version: "1.0.0", Date: "N/A", Commit: "N/A"})

	rr := th.do(t, http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.0.0", decodeBody[models.BuildInfoResponse](t, rr).Version)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unsupported method on plan", method: http.MethodPut, target: "/api/plans/plan-1"},
		{name: "unsupported method on plan list", method: http.MethodPatch, target: "/api/plans"},
		{name: "unsupported method on generate", method: http.MethodGet, target: "/api/generate"},
		{name: "unknown api path", method: http.MethodGet, target: "/api/unknown"},
		{name: "unknown plan sub-path", method: http.MethodGet, target: "/api/plans/plan-1/unknown"},
		{name: "unknown root path", method: http.MethodGet, target: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			th := newTestHandler(t)

			// Act
			rr := th.do(t, tt.method, tt.target, nil)

			// Assert
			require.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			body := decodeBody[models.ErrorResponse](t, rr)
			assert.Equal(t, app.KindNotFound, body.Kind)
			assert.Equal(t, MsgRouteNotFound, body.Error)
		})
	}
}
