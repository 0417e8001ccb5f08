package auth

import (
	"context"
	"errors"
	"fmt"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
)

// OwnerBasedAuthorizer implements access checks using ownership. A user can
// touch a resource iff they own the project that contains it. A project that
// exists but belongs to someone else is Forbidden; a project that does not
// exist at all is NotFound.
type OwnerBasedAuthorizer struct {
	projectRepo repositories.ProjectRepository
	contentRepo repositories.ContentItemRepository
}

// NewOwnerBasedAuthorizer creates a new ownership-based authorizer
func NewOwnerBasedAuthorizer(
	projectRepo repositories.ProjectRepository,
	contentRepo repositories.ContentItemRepository,
) *OwnerBasedAuthorizer {
	return &OwnerBasedAuthorizer{
		projectRepo: projectRepo,
		contentRepo: contentRepo,
	}
}

// RequireProject returns the project when userID owns it.
func (a *OwnerBasedAuthorizer) RequireProject(ctx context.Context, userID, projectID string) (*models.Project, error) {
	project, err := a.projectRepo.GetByID(ctx, projectID, userID)
	if err == nil {
		return project, nil
	}

	if errors.Is(err, domain.ErrNotFound) {
		exists, existsErr := a.projectRepo.Exists(ctx, projectID)
		if existsErr != nil {
			return nil, fmt.Errorf("check project access: %w", existsErr)
		}
		if exists {
			return nil, fmt.Errorf("access denied to project %s: %w", projectID, domain.ErrForbidden)
		}
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil, fmt.Errorf("check project access: %w", err)
}

// RequireItem returns the item and its project when userID owns the project.
func (a *OwnerBasedAuthorizer) RequireItem(ctx context.Context, userID, itemID string) (*models.ContentItem, *models.Project, error) {
	item, err := a.contentRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	project, err := a.RequireProject(ctx, userID, item.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	return item, project, nil
}
