package repositories

import (
	"context"

	"draftsmith/internal/domain/models"
)

// RevisionRepository persists immutable project snapshots.
type RevisionRepository interface {
	// Insert writes a new revision with its number already assigned.
	// A (project_id, revision_number) unique violation surfaces as a
	// conflict so the caller can retry number assignment.
	Insert(ctx context.Context, revision *models.Revision) error

	// NextNumber returns max(revision_number)+1 for the project (1 when no
	// revisions exist). Callers must run this and Insert inside one
	// transaction to keep numbers gapless under concurrency.
	NextNumber(ctx context.Context, projectID string) (int, error)

	// ListByProject retrieves all revisions in ascending number order.
	ListByProject(ctx context.Context, projectID string) ([]models.Revision, error)

	// GetByNumber retrieves one revision of a project by its number.
	GetByNumber(ctx context.Context, projectID string, number int) (*models.Revision, error)
}
