package services

import (
	"context"

	"draftsmith/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	OwnerID     string  `json:"-"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
}

// UpdateProjectRequest represents a request to update a project
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	// CreateProject creates a new project
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, id, ownerID string) (*models.Project, error)

	// ListProjects retrieves all projects for an owner
	ListProjects(ctx context.Context, ownerID string) ([]models.Project, error)

	// UpdateProject updates a project's name and/or description
	UpdateProject(ctx context.Context, id, ownerID string, req *UpdateProjectRequest) (*models.Project, error)

	// DeleteProject deletes a project and everything it owns
	DeleteProject(ctx context.Context, id, ownerID string) error
}
