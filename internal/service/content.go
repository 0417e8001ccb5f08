package service

import (
	"context"
	"fmt"
	"log/slog"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
	"draftsmith/internal/domain/services"
	serviceAuth "draftsmith/internal/service/auth"
)

// contentService implements the ContentService interface
type contentService struct {
	contentRepo repositories.ContentItemRepository
	authorizer  *serviceAuth.OwnerBasedAuthorizer
	logger      *slog.Logger
}

// NewContentService creates a new content service
func NewContentService(
	contentRepo repositories.ContentItemRepository,
	authorizer *serviceAuth.OwnerBasedAuthorizer,
	logger *slog.Logger,
) services.ContentService {
	return &contentService{
		contentRepo: contentRepo,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// GetItems retrieves all items of a project in ordinal order
func (s *contentService) GetItems(ctx context.Context, projectID, ownerID string) ([]models.ContentItem, error) {
	if _, err := s.authorizer.RequireProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	return s.contentRepo.ListByProject(ctx, projectID)
}

// GetItem retrieves a single item of a project
func (s *contentService) GetItem(ctx context.Context, projectID, itemID, ownerID string) (*models.ContentItem, error) {
	item, _, err := s.authorizer.RequireItem(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if item.ProjectID != projectID {
		return nil, fmt.Errorf("content item %s: %w", itemID, domain.ErrNotFound)
	}

	return item, nil
}

// SetContent overwrites an item's text
func (s *contentService) SetContent(ctx context.Context, itemID, ownerID string, content string) (*models.ContentItem, error) {
	if _, _, err := s.authorizer.RequireItem(ctx, ownerID, itemID); err != nil {
		return nil, err
	}

	item, err := s.contentRepo.SetContent(ctx, itemID, content)
	if err != nil {
		return nil, err
	}

	s.logger.Info("content set",
		"item_id", item.ID,
		"project_id", item.ProjectID,
		"is_generated", item.IsGenerated,
	)

	return item, nil
}
