package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"draftsmith/internal/domain/services"
	"draftsmith/internal/httputil"
)

// RevisionHandler handles revision snapshot HTTP requests
type RevisionHandler struct {
	revisionService services.RevisionService
	logger          *slog.Logger
}

// NewRevisionHandler creates a new revision handler
func NewRevisionHandler(revisionService services.RevisionService, logger *slog.Logger) *RevisionHandler {
	return &RevisionHandler{
		revisionService: revisionService,
		logger:          logger,
	}
}

// CreateRevision snapshots the project's current content
// POST /api/projects/{id}/revisions
func (h *RevisionHandler) CreateRevision(w http.ResponseWriter, r *http.Request) {
	actor := httputil.GetActor(r)
	if actor.UserID == "" {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	revision, err := h.revisionService.CreateRevision(r.Context(), r.PathValue("id"), actor)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, revision)
}

// ListRevisions retrieves a project's revisions in ascending number order
// GET /api/projects/{id}/revisions
func (h *RevisionHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	revisions, err := h.revisionService.ListRevisions(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, revisions)
}

// GetRevision retrieves one revision by its number
// GET /api/projects/{id}/revisions/{number}
func (h *RevisionHandler) GetRevision(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || number < 1 {
		httputil.RespondError(w, http.StatusBadRequest, "revision number must be a positive integer")
		return
	}

	revision, err := h.revisionService.GetRevision(r.Context(), r.PathValue("id"), userID, number)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, revision)
}
