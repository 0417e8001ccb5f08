package services

import (
	"context"

	"draftsmith/internal/domain/models"
)

// ContentService reads and writes the current text of a project's items.
// Every operation checks project ownership first.
type ContentService interface {
	// GetItems retrieves all items of a project in ordinal order.
	GetItems(ctx context.Context, projectID, ownerID string) ([]models.ContentItem, error)

	// GetItem retrieves a single item of a project.
	GetItem(ctx context.Context, projectID, itemID, ownerID string) (*models.ContentItem, error)

	// SetContent overwrites an item's text. is_generated becomes true when
	// the new text is non-empty.
	SetContent(ctx context.Context, itemID, ownerID string, content string) (*models.ContentItem, error)
}
