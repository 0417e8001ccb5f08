package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
	"draftsmith/internal/domain/services"
	"draftsmith/internal/llm"
	"draftsmith/internal/prompts"
	serviceAuth "draftsmith/internal/service/auth"
)

// generationService walks a project's outline and fills content items via
// the text-generation provider.
type generationService struct {
	outlineRepo repositories.OutlineRepository
	contentRepo repositories.ContentItemRepository
	authorizer  *serviceAuth.OwnerBasedAuthorizer
	provider    llm.Provider
	prompts     *prompts.Registry
	logger      *slog.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	outlineRepo repositories.OutlineRepository,
	contentRepo repositories.ContentItemRepository,
	authorizer *serviceAuth.OwnerBasedAuthorizer,
	provider llm.Provider,
	promptRegistry *prompts.Registry,
	logger *slog.Logger,
) services.GenerationService {
	return &generationService{
		outlineRepo: outlineRepo,
		contentRepo: contentRepo,
		authorizer:  authorizer,
		provider:    provider,
		prompts:     promptRegistry,
		logger:      logger,
	}
}

// Generate runs one generation batch. Items are generated sequentially in
// ordinal order; each already-written title is passed along for continuity.
// A failing item is recorded in the report and never aborts the batch, and
// content is only written after a successful provider response.
func (s *generationService) Generate(ctx context.Context, projectID string, req *services.GenerateRequest) (*models.GenerationReport, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.OwnerID, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project, err := s.authorizer.RequireProject(ctx, req.OwnerID, projectID)
	if err != nil {
		return nil, err
	}

	outline, err := s.outlineRepo.GetByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ValidationError{Message: "project has no outline configured"}
		}
		return nil, err
	}

	items, err := s.ensureItems(ctx, projectID, outline.Titles)
	if err != nil {
		return nil, err
	}

	requested := make(map[string]bool, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		requested[id] = true
	}

	report := &models.GenerationReport{
		ProjectID: projectID,
		Items:     []models.ItemResult{},
	}

	// Titles of items that already carry content feed the provider as
	// context for the ones generated after them.
	var previous []string

	for _, item := range items {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if !s.shouldGenerate(&item, req, requested) {
			if item.IsGenerated {
				previous = append(previous, item.Title)
			}
			continue
		}

		request, err := s.prompts.Generation(string(project.Type), prompts.GenerationVars{
			Title:       item.Title,
			ProjectName: project.Name,
			Context:     outline.ContextText(),
			Previous:    previous,
		})
		if err != nil {
			return nil, err
		}

		text, err := s.provider.Generate(ctx, request)
		if err != nil {
			s.logger.Warn("generation failed for item",
				"item_id", item.ID,
				"title", item.Title,
				"provider", s.provider.Name(),
				"error", err,
			)
			report.Items = append(report.Items, models.ItemResult{
				ItemID: item.ID,
				Title:  item.Title,
				Error:  fmt.Sprintf("%v: %v", domain.ErrGenerationFailed, err),
			})
			report.FailedCount++
			continue
		}

		if _, err := s.contentRepo.SetContent(ctx, item.ID, text); err != nil {
			report.Items = append(report.Items, models.ItemResult{
				ItemID: item.ID,
				Title:  item.Title,
				Error:  err.Error(),
			})
			report.FailedCount++
			continue
		}

		report.Items = append(report.Items, models.ItemResult{
			ItemID:    item.ID,
			Title:     item.Title,
			Generated: true,
		})
		report.GeneratedCount++
		previous = append(previous, item.Title)
	}

	s.logger.Info("generation batch finished",
		"project_id", projectID,
		"generated", report.GeneratedCount,
		"failed", report.FailedCount,
	)

	return report, nil
}

// shouldGenerate decides whether the batch touches this item. generate_all
// beats everything; an explicit id list narrows the batch; the default is
// "items with no content yet".
func (s *generationService) shouldGenerate(item *models.ContentItem, req *services.GenerateRequest, requested map[string]bool) bool {
	if req.GenerateAll {
		return true
	}
	if len(requested) > 0 {
		return requested[item.ID]
	}
	return !item.IsGenerated
}

// ensureItems returns the project's items in ordinal order, creating any
// that the outline names but the store lacks.
func (s *generationService) ensureItems(ctx context.Context, projectID string, titles []string) ([]models.ContentItem, error) {
	items, err := s.contentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byOrdinal := make(map[int]bool, len(items))
	for _, item := range items {
		byOrdinal[item.Ordinal] = true
	}

	created := false
	for ordinal, title := range titles {
		if byOrdinal[ordinal] {
			continue
		}
		item := &models.ContentItem{
			ProjectID: projectID,
			Ordinal:   ordinal,
			Title:     title,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.contentRepo.Create(ctx, item); err != nil {
			return nil, err
		}
		created = true
	}

	if !created {
		return items, nil
	}
	return s.contentRepo.ListByProject(ctx, projectID)
}
