package services

import (
	"context"

	"draftsmith/internal/domain/models"
)

// SaveOutlineRequest represents a request to save a project's outline.
// Titles become the project's content items: new ordinals are created,
// existing ordinals are renamed in place (keeping generated content),
// and items beyond the new length are removed.
type SaveOutlineRequest struct {
	OwnerID string   `json:"-"`
	Titles  []string `json:"titles"`
	Context *string  `json:"context,omitempty"`
}

// OutlineService manages the per-project generation configuration.
type OutlineService interface {
	// SaveOutline stores the outline and reconciles content items with it.
	SaveOutline(ctx context.Context, projectID string, req *SaveOutlineRequest) (*models.Outline, error)

	// GetOutline retrieves the outline of a project.
	GetOutline(ctx context.Context, projectID, ownerID string) (*models.Outline, error)
}
