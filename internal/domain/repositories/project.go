package repositories

import (
	"context"

	"draftsmith/internal/domain/models"
)

// ProjectRepository persists projects. Reads are always scoped to the
// owner; a project belonging to someone else is indistinguishable from a
// missing one (not found).
type ProjectRepository interface {
	// Create inserts a new project and fills in its generated fields.
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project owned by ownerID.
	GetByID(ctx context.Context, id, ownerID string) (*models.Project, error)

	// Exists reports whether the project exists regardless of owner.
	// Authorization uses it to tell "not found" apart from "not yours".
	Exists(ctx context.Context, id string) (bool, error)

	// List retrieves all projects for an owner, newest first.
	List(ctx context.Context, ownerID string) ([]models.Project, error)

	// Update persists name/description changes.
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project. Content items, refinements, outline and
	// revisions cascade at the database level.
	Delete(ctx context.Context, id, ownerID string) error
}
