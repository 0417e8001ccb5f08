package handler

import (
	"log/slog"
	"net/http"

	"draftsmith/internal/domain/services"
	"draftsmith/internal/httputil"
)

// ContentHandler handles content item HTTP requests
type ContentHandler struct {
	contentService services.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService services.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// ListItems retrieves all items of a project in ordinal order
// GET /api/projects/{id}/items
func (h *ContentHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	items, err := h.contentService.GetItems(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

// GetItem retrieves a single item of a project
// GET /api/projects/{id}/items/{itemID}
func (h *ContentHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	item, err := h.contentService.GetItem(r.Context(), r.PathValue("id"), r.PathValue("itemID"), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, item)
}
