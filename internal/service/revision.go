package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
	"draftsmith/internal/domain/services"
	serviceAuth "draftsmith/internal/service/auth"
)

// revisionService captures point-in-time snapshots of a project's items and
// serves them back by number.
type revisionService struct {
	revisionRepo repositories.RevisionRepository
	contentRepo  repositories.ContentItemRepository
	txManager    repositories.TransactionManager
	authorizer   *serviceAuth.OwnerBasedAuthorizer
	logger       *slog.Logger
}

// NewRevisionService creates a new revision service
func NewRevisionService(
	revisionRepo repositories.RevisionRepository,
	contentRepo repositories.ContentItemRepository,
	txManager repositories.TransactionManager,
	authorizer *serviceAuth.OwnerBasedAuthorizer,
	logger *slog.Logger,
) services.RevisionService {
	return &revisionService{
		revisionRepo: revisionRepo,
		contentRepo:  contentRepo,
		txManager:    txManager,
		authorizer:   authorizer,
		logger:       logger,
	}
}

// CreateRevision snapshots the project's current items. Number assignment
// and the insert run in one transaction; a (project_id, revision_number)
// collision from a concurrent snapshot is retried once with a fresh number.
func (s *revisionService) CreateRevision(ctx context.Context, projectID string, actor models.Actor) (*models.Revision, error) {
	project, err := s.authorizer.RequireProject(ctx, actor.UserID, projectID)
	if err != nil {
		return nil, err
	}

	items, err := s.contentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &domain.ValidationError{Message: "project has no content items to snapshot"}
	}

	snapshot := models.RevisionSnapshot{
		Type:  project.Type,
		Items: make([]models.RevisionItem, 0, len(items)),
	}
	for _, item := range items {
		snapshot.Items = append(snapshot.Items, models.RevisionItem{
			ItemID:  item.ID,
			Title:   item.Title,
			Content: item.Content,
			Ordinal: item.Ordinal,
		})
	}

	revision, err := s.insertNumbered(ctx, projectID, snapshot, actor)
	if errors.Is(err, domain.ErrConflict) {
		s.logger.Warn("revision number collision, retrying", "project_id", projectID)
		revision, err = s.insertNumbered(ctx, projectID, snapshot, actor)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("revision created",
		"project_id", projectID,
		"revision_number", revision.RevisionNumber,
		"items", len(snapshot.Items),
		"created_by", actor.DisplayName(),
	)

	return revision, nil
}

func (s *revisionService) insertNumbered(ctx context.Context, projectID string, snapshot models.RevisionSnapshot, actor models.Actor) (*models.Revision, error) {
	var revision *models.Revision
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		number, err := s.revisionRepo.NextNumber(txCtx, projectID)
		if err != nil {
			return err
		}
		revision = &models.Revision{
			ProjectID:      projectID,
			RevisionNumber: number,
			Snapshot:       snapshot,
			CreatedBy:      actor.DisplayName(),
			CreatedAt:      time.Now(),
		}
		return s.revisionRepo.Insert(txCtx, revision)
	})
	if err != nil {
		return nil, err
	}
	return revision, nil
}

// ListRevisions retrieves a project's revisions in ascending number order.
func (s *revisionService) ListRevisions(ctx context.Context, projectID, ownerID string) ([]models.Revision, error) {
	if _, err := s.authorizer.RequireProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.revisionRepo.ListByProject(ctx, projectID)
}

// GetRevision retrieves one revision by its number.
func (s *revisionService) GetRevision(ctx context.Context, projectID, ownerID string, number int) (*models.Revision, error) {
	if _, err := s.authorizer.RequireProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.revisionRepo.GetByNumber(ctx, projectID, number)
}
