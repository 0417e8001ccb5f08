package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftsmith/internal/config"
	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
	"draftsmith/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProject creates a new project
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        models.ProjectType(req.Type),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"type", project.Type,
		"owner_id", req.OwnerID,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id, ownerID string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id, ownerID)
}

// ListProjects retrieves all projects for an owner
func (s *projectService) ListProjects(ctx context.Context, ownerID string) ([]models.Project, error) {
	return s.projectRepo.List(ctx, ownerID)
}

// UpdateProject updates a project's name and/or description
func (s *projectService) UpdateProject(ctx context.Context, id, ownerID string, req *services.UpdateProjectRequest) (*models.Project, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.projectRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"name", project.Name,
		"owner_id", ownerID,
	)

	return project, nil
}

// DeleteProject deletes a project and everything it owns
func (s *projectService) DeleteProject(ctx context.Context, id, ownerID string) error {
	if err := s.projectRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("project deleted",
		"id", id,
		"owner_id", ownerID,
	)

	return nil
}

// validateCreateRequest validates a create project request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.OwnerID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
			validation.By(validateNotBlank("name")),
		),
		validation.Field(&req.Type,
			validation.Required,
			validation.By(validateProjectType),
		),
	)
}

// validateUpdateRequest validates an update project request
func (s *projectService) validateUpdateRequest(req *services.UpdateProjectRequest) error {
	if req.Name == nil && req.Description == nil {
		return fmt.Errorf("nothing to update")
	}
	if req.Name != nil {
		if err := validation.Validate(*req.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
			validation.By(validateNotBlank("name")),
		); err != nil {
			return err
		}
	}
	return nil
}

// validateProjectType rejects anything but the supported document kinds
func validateProjectType(value interface{}) error {
	t, ok := value.(string)
	if !ok {
		return fmt.Errorf("type must be a string")
	}
	if !models.ProjectType(t).Valid() {
		return fmt.Errorf("type must be %q or %q", models.ProjectTypeWord, models.ProjectTypePowerPoint)
	}
	return nil
}

// validateNotBlank rejects strings that are empty after trimming
func validateNotBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", field)
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be blank", field)
		}
		return nil
	}
}
