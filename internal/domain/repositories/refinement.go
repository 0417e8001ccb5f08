package repositories

import (
	"context"

	"draftsmith/internal/domain/models"
)

// RefinementRepository persists the append-only refinement log.
// Records are never updated or deleted by normal operation.
type RefinementRepository interface {
	// Append inserts a new refinement record.
	Append(ctx context.Context, refinement *models.Refinement) error

	// ListByItem retrieves all records for a content item, oldest first.
	// Returns an empty slice when the item has no refinements yet.
	ListByItem(ctx context.Context, contentItemID string) ([]models.Refinement, error)
}
