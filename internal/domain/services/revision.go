package services

import (
	"context"

	"draftsmith/internal/domain/models"
)

// RevisionService captures and lists immutable project snapshots.
type RevisionService interface {
	// CreateRevision snapshots the project's current items under the next
	// gapless revision number, recording the actor as created_by.
	CreateRevision(ctx context.Context, projectID string, actor models.Actor) (*models.Revision, error)

	// ListRevisions retrieves a project's revisions in ascending number order.
	ListRevisions(ctx context.Context, projectID, ownerID string) ([]models.Revision, error)

	// GetRevision retrieves one revision by its number.
	GetRevision(ctx context.Context, projectID, ownerID string, number int) (*models.Revision, error)
}
