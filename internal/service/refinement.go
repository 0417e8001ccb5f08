package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftsmith/internal/config"
	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
	"draftsmith/internal/domain/services"
	"draftsmith/internal/llm"
	"draftsmith/internal/prompts"
	serviceAuth "draftsmith/internal/service/auth"
)

// refinementService rewrites item content and keeps the append-only log of
// every attempt.
type refinementService struct {
	contentRepo    repositories.ContentItemRepository
	refinementRepo repositories.RefinementRepository
	authorizer     *serviceAuth.OwnerBasedAuthorizer
	provider       llm.Provider
	prompts        *prompts.Registry
	logger         *slog.Logger
}

// NewRefinementService creates a new refinement service
func NewRefinementService(
	contentRepo repositories.ContentItemRepository,
	refinementRepo repositories.RefinementRepository,
	authorizer *serviceAuth.OwnerBasedAuthorizer,
	provider llm.Provider,
	promptRegistry *prompts.Registry,
	logger *slog.Logger,
) services.RefinementService {
	return &refinementService{
		contentRepo:    contentRepo,
		refinementRepo: refinementRepo,
		authorizer:     authorizer,
		provider:       provider,
		prompts:        promptRegistry,
		logger:         logger,
	}
}

// Refine applies one refinement. With a prompt the provider rewrites the
// base text (the caller-supplied content when present, the stored text
// otherwise); without one the caller's content is taken verbatim. The item
// is only updated after the new text is known, and the log record is
// appended in the same pass.
func (s *refinementService) Refine(ctx context.Context, itemID string, req *services.RefineRequest) (*services.RefineResult, error) {
	if err := s.validateRefineRequest(req); err != nil {
		return nil, err
	}

	item, project, err := s.authorizer.RequireItem(ctx, req.OwnerID, itemID)
	if err != nil {
		return nil, err
	}

	base := item.Text()
	if req.Content != nil {
		base = *req.Content
	}

	var newText string
	var contentChanged bool

	switch {
	case req.Prompt != nil:
		if base == "" {
			return nil, &domain.ValidationError{Message: "item has no content to refine; generate it first or supply content"}
		}
		request, err := s.prompts.Refinement(string(project.Type), prompts.RefinementVars{
			Instruction: *req.Prompt,
			Content:     base,
		})
		if err != nil {
			return nil, err
		}
		newText, err = s.provider.Generate(ctx, request)
		if err != nil {
			s.logger.Warn("refinement failed",
				"item_id", itemID,
				"provider", s.provider.Name(),
				"error", err,
			)
			return nil, &domain.GenerationError{Message: fmt.Sprintf("provider %s: %v", s.provider.Name(), err)}
		}
		contentChanged = true

	case req.Content != nil:
		newText = *req.Content
		contentChanged = true

	default:
		// Feedback-only record; the item text stays as it is.
		if base == "" {
			return nil, &domain.ValidationError{Message: "nothing to record: supply a prompt, content, or refine an item that has content"}
		}
		newText = base
	}

	if contentChanged {
		item, err = s.contentRepo.SetContent(ctx, itemID, newText)
		if err != nil {
			return nil, err
		}
	}

	refinement := &models.Refinement{
		ContentItemID: itemID,
		Prompt:        req.Prompt,
		Content:       newText,
		Feedback:      models.Feedback(req.Feedback),
		Comments:      req.Comments,
		CreatedAt:     time.Now(),
	}
	if err := s.refinementRepo.Append(ctx, refinement); err != nil {
		return nil, err
	}

	s.logger.Info("item refined",
		"item_id", itemID,
		"project_id", project.ID,
		"prompted", req.Prompt != nil,
	)

	return &services.RefineResult{Item: item, Refinement: refinement}, nil
}

// ListRefinements retrieves an item's records, oldest first.
func (s *refinementService) ListRefinements(ctx context.Context, itemID, ownerID string) ([]models.Refinement, error) {
	if _, _, err := s.authorizer.RequireItem(ctx, ownerID, itemID); err != nil {
		return nil, err
	}
	return s.refinementRepo.ListByItem(ctx, itemID)
}

func (s *refinementService) validateRefineRequest(req *services.RefineRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.OwnerID, validation.Required),
		validation.Field(&req.Prompt, validation.Length(1, config.MaxRefinePromptLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !models.Feedback(req.Feedback).Valid() {
		return &domain.ValidationError{Message: fmt.Sprintf("invalid feedback %q: must be like or dislike", req.Feedback)}
	}
	return nil
}
