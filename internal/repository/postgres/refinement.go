package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
)

// PostgresRefinementRepository implements the RefinementRepository interface.
// The table is append-only; there are no update or delete queries on purpose.
type PostgresRefinementRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewRefinementRepository creates a new refinement repository
func NewRefinementRepository(config *RepositoryConfig) repositories.RefinementRepository {
	return &PostgresRefinementRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Append inserts a new refinement record
func (r *PostgresRefinementRepository) Append(ctx context.Context, refinement *models.Refinement) error {
	if refinement.ID == "" {
		refinement.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, content_item_id, prompt, content, feedback, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`, r.tables.Refinements)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		refinement.ID,
		refinement.ContentItemID,
		refinement.Prompt,
		refinement.Content,
		refinement.Feedback,
		refinement.Comments,
	).Scan(&refinement.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("content item %s: %w", refinement.ContentItemID, domain.ErrNotFound)
		}
		return fmt.Errorf("append refinement: %w", err)
	}

	return nil
}

// ListByItem retrieves all records for a content item, oldest first
func (r *PostgresRefinementRepository) ListByItem(ctx context.Context, contentItemID string) ([]models.Refinement, error) {
	query := fmt.Sprintf(`
		SELECT id, content_item_id, prompt, content, feedback, comments, created_at
		FROM %s
		WHERE content_item_id = $1
		ORDER BY created_at ASC
	`, r.tables.Refinements)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, contentItemID)
	if err != nil {
		return nil, fmt.Errorf("list refinements: %w", err)
	}
	defer rows.Close()

	var refinements []models.Refinement
	for rows.Next() {
		var refinement models.Refinement
		err := rows.Scan(
			&refinement.ID,
			&refinement.ContentItemID,
			&refinement.Prompt,
			&refinement.Content,
			&refinement.Feedback,
			&refinement.Comments,
			&refinement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan refinement: %w", err)
		}
		refinements = append(refinements, refinement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate refinements: %w", err)
	}

	// "No refinements yet" is an empty list, not an error.
	if refinements == nil {
		refinements = []models.Refinement{}
	}

	return refinements, nil
}
