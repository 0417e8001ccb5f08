package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
	"draftsmith/internal/domain/services"
	"draftsmith/internal/export"
	serviceAuth "draftsmith/internal/service/auth"
)

// exportService renders a project's items into a downloadable OOXML file.
type exportService struct {
	contentRepo repositories.ContentItemRepository
	authorizer  *serviceAuth.OwnerBasedAuthorizer
	logger      *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(
	contentRepo repositories.ContentItemRepository,
	authorizer *serviceAuth.OwnerBasedAuthorizer,
	logger *slog.Logger,
) services.ExportService {
	return &exportService{
		contentRepo: contentRepo,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// ExportProject renders the project as .docx (word) or .pptx (powerpoint).
// Items appear in ordinal order; items without content export as their
// title only.
func (s *exportService) ExportProject(ctx context.Context, projectID, ownerID string) (*services.ExportResult, error) {
	project, err := s.authorizer.RequireProject(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	items, err := s.contentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &domain.ValidationError{Message: "project has no content items to export"}
	}

	sections := make([]export.Section, 0, len(items))
	for _, item := range items {
		sections = append(sections, export.Section{
			Title:  item.Title,
			Blocks: export.ParseBlocks(item.Text()),
		})
	}

	var subtitle string
	if project.Description != nil {
		subtitle = *project.Description
	}

	var (
		data        []byte
		extension   string
		contentType string
	)

	switch project.Type {
	case models.ProjectTypeWord:
		data, err = export.RenderDocx(project.Name, subtitle, sections)
		extension, contentType = "docx", export.DocxContentType
	case models.ProjectTypePowerPoint:
		data, err = export.RenderPptx(project.Name, subtitle, sections)
		extension, contentType = "pptx", export.PptxContentType
	default:
		return nil, &domain.ValidationError{Message: fmt.Sprintf("project type %q has no export format", project.Type)}
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", extension, err)
	}

	s.logger.Info("project exported",
		"project_id", projectID,
		"format", extension,
		"items", len(items),
		"bytes", len(data),
	)

	return &services.ExportResult{
		Filename:    exportFilename(project.Name, extension),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// exportFilename derives a safe download name from the project name.
func exportFilename(name, extension string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		default:
			return -1
		}
	}, name)
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		cleaned = "export"
	}
	return cleaned + "." + extension
}
