package service

import (
	"context"
	"errors"
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
	serviceAuth "draftsmith/internal/service/auth"
)

// outlineService implements the OutlineService interface
type outlineService struct {
	outlineRepo repositories.OutlineRepository
	contentRepo repositories.ContentItemRepository
	authorizer  *serviceAuth.OwnerBasedAuthorizer
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewOutlineService creates a new outline service
func NewOutlineService(
	outlineRepo repositories.OutlineRepository,
	contentRepo repositories.ContentItemRepository,
	authorizer *serviceAuth.OwnerBasedAuthorizer,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.OutlineService {
	return &outlineService{
		outlineRepo: outlineRepo,
		contentRepo: contentRepo,
		authorizer:  authorizer,
		txManager:   txManager,
		logger:      logger,
	}
}

// SaveOutline stores the outline and reconciles the project's content items
// with it: titles create or rename items at their ordinal, and items beyond
// the new outline length are removed. Generated content at unchanged
// ordinals survives a save.
func (s *outlineService) SaveOutline(ctx context.Context, projectID string, req *services.SaveOutlineRequest) (*models.Outline, error) {
	if err := s.validateSaveRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.authorizer.RequireProject(ctx, req.OwnerID, projectID); err != nil {
		return nil, err
	}

	titles := make([]string, len(req.Titles))
	for i, t := range req.Titles {
		titles[i] = strings.TrimSpace(t)
	}

	outline := &models.Outline{
		ProjectID: projectID,
		Titles:    titles,
		Context:   req.Context,
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.outlineRepo.Upsert(txCtx, outline); err != nil {
			return err
		}
		return s.reconcileItems(txCtx, projectID, titles)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("outline saved",
		"project_id", projectID,
		"titles", len(titles),
	)

	return outline, nil
}

// GetOutline retrieves the outline of a project
func (s *outlineService) GetOutline(ctx context.Context, projectID, ownerID string) (*models.Outline, error) {
	if _, err := s.authorizer.RequireProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	return s.outlineRepo.GetByProject(ctx, projectID)
}

// reconcileItems aligns content items with the saved titles.
func (s *outlineService) reconcileItems(ctx context.Context, projectID string, titles []string) error {
	existing, err := s.contentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}

	byOrdinal := make(map[int]*models.ContentItem, len(existing))
	for i := range existing {
		byOrdinal[existing[i].Ordinal] = &existing[i]
	}

	for ordinal, title := range titles {
		item, ok := byOrdinal[ordinal]
		if !ok {
			newItem := &models.ContentItem{
				ProjectID: projectID,
				Ordinal:   ordinal,
				Title:     title,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := s.contentRepo.Create(ctx, newItem); err != nil {
				return err
			}
			continue
		}
		if item.Title != title {
			if err := s.contentRepo.UpdateTitle(ctx, item.ID, title); err != nil {
				return err
			}
		}
	}

	return s.contentRepo.DeleteBeyondOrdinal(ctx, projectID, len(titles))
}

// validateSaveRequest validates a save outline request
func (s *outlineService) validateSaveRequest(req *services.SaveOutlineRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.OwnerID, validation.Required),
		validation.Field(&req.Titles,
			validation.Required.Error("outline must contain at least one title"),
			validation.Length(1, config.MaxOutlineTitles),
		),
	)
	if err != nil {
		return err
	}

	for i, title := range req.Titles {
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("title %d cannot be blank", i+1)
		}
		if len(title) > config.MaxItemTitleLength {
			return fmt.Errorf("title %d exceeds %d characters", i+1, config.MaxItemTitleLength)
		}
	}

	if req.Context != nil && len(*req.Context) > config.MaxOutlineContextLength {
		return errors.New("context is too long")
	}

	return nil
}
