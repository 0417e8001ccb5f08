package repositories

import (
	"context"

	"draftsmith/internal/domain/models"
)

// ContentItemRepository persists the sections/slides of a project.
type ContentItemRepository interface {
	// Create inserts a new item at its ordinal.
	Create(ctx context.Context, item *models.ContentItem) error

	// GetByID retrieves a single item.
	GetByID(ctx context.Context, id string) (*models.ContentItem, error)

	// ListByProject retrieves all items of a project in ordinal order.
	ListByProject(ctx context.Context, projectID string) ([]models.ContentItem, error)

	// SetContent overwrites an item's text. is_generated follows from the
	// text being non-empty. Returns the updated item.
	SetContent(ctx context.Context, id string, content string) (*models.ContentItem, error)

	// UpdateTitle renames an item in place, keeping its content.
	UpdateTitle(ctx context.Context, id, title string) error

	// DeleteBeyondOrdinal removes items whose ordinal is >= the given bound.
	// Used when a saved outline shrinks.
	DeleteBeyondOrdinal(ctx context.Context, projectID string, bound int) error
}
