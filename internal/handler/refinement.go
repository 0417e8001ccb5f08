package handler

import (
	"log/slog"
	"net/http"

	"draftsmith/internal/domain/services"
	"draftsmith/internal/httputil"
)

// RefinementHandler handles refinement HTTP requests
type RefinementHandler struct {
	refinementService services.RefinementService
	logger            *slog.Logger
}

// NewRefinementHandler creates a new refinement handler
func NewRefinementHandler(refinementService services.RefinementService, logger *slog.Logger) *RefinementHandler {
	return &RefinementHandler{
		refinementService: refinementService,
		logger:            logger,
	}
}

// Refine applies one refinement to an item and appends its log record
// POST /api/items/{id}/refine
func (h *RefinementHandler) Refine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req services.RefineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OwnerID = userID

	result, err := h.refinementService.Refine(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// ListRefinements retrieves an item's refinement records, oldest first
// GET /api/items/{id}/refinements
func (h *RefinementHandler) ListRefinements(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	refinements, err := h.refinementService.ListRefinements(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, refinements)
}
