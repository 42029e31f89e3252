package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/mock"
	"github.com/divinoviana/planoespecialindividualizado/internal/service"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type testHandler struct {
	router     http.Handler
	plans      *mock.MockPlanService
	generation *mock.MockGenerationService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		plans:      mock.NewMockPlanService(ctrl),
		generation: mock.NewMockGenerationService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		PlanService:       th.plans,
		GenerationService: th.generation,
		AppInfoService:    th.appInfo,
	}, logger.Nop())
	th.router = h.Init()
	return th
}

func (th *testHandler) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func fullMetadata() models.PlanMetadata {
	return models.PlanMetadata{
		StudentName:       "João Silva",
		ClassName:         "5A",
		Subject:           "Português",
		Period:            "2º Bimestre",
		Frequency:         "Semanal",
		TeacherRegent:     "Ana",
		CollaborationTeam: "AEE",
		ExecutionPeriod:   "Maio a Julho",
	}
}

func storedPlan() models.PlanRecord {
	createdAt := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	return models.PlanRecord{
		ID:           "plan-1",
		CreatedAt:    &createdAt,
		PlanMetadata: fullMetadata(),
		Content:      models.ContentFields{Objectives: "ler textos curtos", Evaluation: "portfólio"},
	}
}
