package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/render"
	"github.com/divinoviana/planoespecialindividualizado/internal/utils"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.services.PlanService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.writeError(w, r, "*Handler.listPlans", err)
		return
	}

	utils.WriteJSON(w, models.PlanListResponse{Plans: plans, Length: len(plans)}, http.StatusOK)
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	var plan models.PlanRecord
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		h.writeError(w, r, "*Handler.createPlan", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	saved, err := h.services.PlanService.Insert(r.Context(), plan)
	if err != nil {
		h.writeError(w, r, "*Handler.createPlan", err)
		return
	}

	w.Header().Set("Location", "/api/plans/"+saved.ID)
	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.services.PlanService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.getPlan", err)
		return
	}

	utils.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) deletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PlanService.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "*Handler.deletePlan", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// printPlan renders a saved plan as html (default), md or txt.
func (h *Handler) printPlan(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil || format == render.FormatXLSX {
		h.writeError(w, r, "*Handler.printPlan", fmt.Errorf("%w: %q", render.ErrUnsupportedFormat, r.URL.Query().Get("format")))
		return
	}

	h.writeDocument(w, r, "*Handler.printPlan", format, false)
}

func (h *Handler) exportPlan(w http.ResponseWriter, r *http.Request) {
	h.writeDocument(w, r, "*Handler.exportPlan", render.FormatXLSX, true)
}

func (h *Handler) writeDocument(w http.ResponseWriter, r *http.Request, funcName string, format render.Format, download bool) {
	plan, err := h.services.PlanService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, funcName, err)
		return
	}

	var buf bytes.Buffer
	if err = render.Write(&buf, render.NewDocument(plan), format); err != nil {
		h.writeError(w, r, funcName, fmt.Errorf("%w: %w", ErrRender, err))
		return
	}

	filename := ""
	if download {
		filename = render.FileName(plan.StudentName, format)
	}
	if _, err = utils.WriteAttachment(w, buf.Bytes(), format.ContentType(), filename); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing document")
	}
}
