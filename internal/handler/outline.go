package handler

import (
	"log/slog"
	"net/http"

	"draftsmith/internal/domain/services"
	"draftsmith/internal/httputil"
)

// OutlineHandler handles outline HTTP requests
type OutlineHandler struct {
	outlineService services.OutlineService
	logger         *slog.Logger
}

// NewOutlineHandler creates a new outline handler
func NewOutlineHandler(outlineService services.OutlineService, logger *slog.Logger) *OutlineHandler {
	return &OutlineHandler{
		outlineService: outlineService,
		logger:         logger,
	}
}

// SaveOutline saves the outline and reconciles content items with it
// PUT /api/projects/{id}/outline
func (h *OutlineHandler) SaveOutline(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req services.SaveOutlineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OwnerID = userID

	outline, err := h.outlineService.SaveOutline(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, outline)
}

// GetOutline retrieves the outline of a project
// GET /api/projects/{id}/outline
func (h *OutlineHandler) GetOutline(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	outline, err := h.outlineService.GetOutline(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, outline)
}
