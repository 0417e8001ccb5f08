package repositories

import (
	"context"

	"draftsmith/internal/domain/models"
)

// OutlineRepository persists the one-per-project generation configuration.
type OutlineRepository interface {
	// Upsert creates the project's outline or replaces its titles/context.
	Upsert(ctx context.Context, outline *models.Outline) error

	// GetByProject retrieves a project's outline.
	GetByProject(ctx context.Context, projectID string) (*models.Outline, error)
}
