package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"draftsmith/internal/domain/services"
)

// ExportHandler handles document export HTTP requests
type ExportHandler struct {
	exportService services.ExportService
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// ExportProject streams the project as a .docx or .pptx attachment
// GET /api/projects/{id}/export
func (h *ExportHandler) ExportProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireActor(w, r)
	if !ok {
		return
	}

	result, err := h.exportService.ExportProject(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}
