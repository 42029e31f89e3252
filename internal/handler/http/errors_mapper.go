package http

import (
	"errors"
	"net/http"

	"github.com/divinoviana/planoespecialindividualizado/internal/app"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/render"
	"github.com/divinoviana/planoespecialindividualizado/internal/utils"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type errorStatus struct {
	target error
	kind   string
	status int
}

// errorStatuses is checked in order: the first matching target wins. Not
// found is matched before the store kind it is wrapped in.
var errorStatuses = []errorStatus{
	{target: ErrInvalidJSON, kind: app.KindValidation, status: http.StatusBadRequest},
	{target: render.ErrUnsupportedFormat, kind: app.KindValidation, status: http.StatusBadRequest},
	{target: models.ErrValidation, kind: app.KindValidation, status: http.StatusBadRequest},
	{target: models.ErrPlanNotFound, kind: app.KindNotFound, status: http.StatusNotFound},
	{target: models.ErrGeneration, kind: app.KindGeneration, status: http.StatusBadGateway},
	{target: models.ErrStore, kind: app.KindStore, status: http.StatusInternalServerError},
}

func statusFromError(err error) (string, int) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.kind, es.status
		}
	}
	return app.KindInternal, http.StatusInternalServerError
}

// errorResponse builds the client facing body. Internal details of store and
// unknown failures are not exposed.
func errorResponse(err error) (models.ErrorResponse, int) {
	kind, status := statusFromError(err)
	resp := models.ErrorResponse{Kind: kind}

	var (
		validationErr *models.ValidationError
		generationErr *models.GenerationError
	)
	switch {
	case errors.As(err, &validationErr):
		resp.Error = validationErr.Error()
		resp.Fields = validationErr.Fields
	case errors.Is(err, ErrInvalidJSON):
		resp.Error = app.MsgInvalidDataProvided
	case errors.Is(err, render.ErrUnsupportedFormat):
		resp.Error = app.MsgUnsupportedFormat
	case kind == app.KindNotFound:
		resp.Error = app.MsgPlanNotFound
	case errors.As(err, &generationErr):
		resp.Error = generationErr.Reason
	case kind == app.KindStore:
		resp.Error = app.MsgStoreFailed
	case errors.Is(err, ErrRender):
		resp.Error = app.MsgRenderFailed
	default:
		resp.Error = app.MsgInternalServerError
	}

	return resp, status
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp, status := errorResponse(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Str("kind", resp.Kind).Msg("request failed")

	if _, werr := utils.WriteJSON(w, resp, status); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", funcName).Msg("error writing error response")
	}
}
