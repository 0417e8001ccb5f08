package services

import (
	"context"

	"draftsmith/internal/domain/models"
)

// RefineRequest represents one refinement of a content item. With a prompt
// present the provider rewrites the current text; without one the caller
// supplies the new text directly (manual edit). Feedback and comments are
// recorded either way.
type RefineRequest struct {
	OwnerID  string  `json:"-"`
	Prompt   *string `json:"prompt,omitempty"`
	Content  *string `json:"content,omitempty"`
	Feedback string  `json:"feedback,omitempty"`
	Comments *string `json:"comments,omitempty"`
}

// RefineResult pairs the updated item with the record just appended.
type RefineResult struct {
	Item       *models.ContentItem `json:"item"`
	Refinement *models.Refinement  `json:"refinement"`
}

// RefinementService updates item content and keeps the append-only log.
type RefinementService interface {
	// Refine applies one refinement to an item and appends its record.
	Refine(ctx context.Context, itemID string, req *RefineRequest) (*RefineResult, error)

	// ListRefinements retrieves an item's records, oldest first. An item
	// with no refinements yields an empty slice, not an error.
	ListRefinements(ctx context.Context, itemID, ownerID string) ([]models.Refinement, error)
}
