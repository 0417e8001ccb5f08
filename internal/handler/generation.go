package handler

import (
	"log/slog"
	"net/http"

	"draftsmith/internal/domain/services"
	"draftsmith/internal/httputil"
)

// GenerationHandler handles generation batch HTTP requests
type GenerationHandler struct {
	generationService services.GenerationService
	logger            *slog.Logger
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService services.GenerationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		logger:            logger,
	}
}

// Generate runs a generation batch over the project's outline. The response
// is always 200 with a per-item report; individual failures live inside it.
// POST /api/projects/{id}/generate
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req services.GenerateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OwnerID = userID

	report, err := h.generationService.Generate(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, report)
}
