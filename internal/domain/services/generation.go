package services

import (
	"context"

	"draftsmith/internal/domain/models"
)

// GenerateRequest represents a request to generate content for a project.
// With GenerateAll set, every outline item is (re)generated; otherwise only
// items that have no content yet, optionally narrowed to ItemIDs.
type GenerateRequest struct {
	OwnerID     string   `json:"-"`
	GenerateAll bool     `json:"generate_all"`
	ItemIDs     []string `json:"item_ids,omitempty"`
}

// GenerationService walks a project's outline and asks the text-generation
// provider for each item's content. One failing item never aborts the
// batch; the report lists per-item outcomes.
type GenerationService interface {
	Generate(ctx context.Context, projectID string, req *GenerateRequest) (*models.GenerationReport, error)
}
