package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/divinoviana/planoespecialindividualizado/internal/utils"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// maxGenerateBody bounds the draft body, which may carry a base64 PDF.
const maxGenerateBody = 20 << 20

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var draft models.DraftInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGenerateBody)).Decode(&draft); err != nil {
		h.writeError(w, r, "*Handler.generate", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	content, err := h.services.GenerationService.Generate(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, "*Handler.generate", err)
		return
	}

	utils.WriteJSON(w, models.GenerateResponse{Content: content}, http.StatusOK)
}
