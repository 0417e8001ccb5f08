package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
)

// PostgresOutlineRepository implements the OutlineRepository interface.
// Titles are a JSONB array; the item ordinal is the array index.
type PostgresOutlineRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewOutlineRepository creates a new outline repository
func NewOutlineRepository(config *RepositoryConfig) repositories.OutlineRepository {
	return &PostgresOutlineRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Upsert creates the project's outline or replaces its titles/context
func (r *PostgresOutlineRepository) Upsert(ctx context.Context, outline *models.Outline) error {
	if outline.ID == "" {
		outline.ID = uuid.NewString()
	}

	titles, err := json.Marshal(outline.Titles)
	if err != nil {
		return fmt.Errorf("marshal outline titles: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, titles, context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (project_id) DO UPDATE
		SET titles = EXCLUDED.titles, context = EXCLUDED.context, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, r.tables.Outlines)

	executor := GetExecutor(ctx, r.pool)
	err = executor.QueryRow(ctx, query,
		outline.ID,
		outline.ProjectID,
		titles,
		outline.Context,
	).Scan(&outline.ID, &outline.CreatedAt, &outline.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", outline.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("upsert outline: %w", err)
	}

	return nil
}

// GetByProject retrieves a project's outline
func (r *PostgresOutlineRepository) GetByProject(ctx context.Context, projectID string) (*models.Outline, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, titles, context, created_at, updated_at
		FROM %s
		WHERE project_id = $1
	`, r.tables.Outlines)

	var outline models.Outline
	var titles []byte

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, projectID).Scan(
		&outline.ID,
		&outline.ProjectID,
		&titles,
		&outline.Context,
		&outline.CreatedAt,
		&outline.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("outline for project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get outline: %w", err)
	}

	if err := json.Unmarshal(titles, &outline.Titles); err != nil {
		return nil, fmt.Errorf("unmarshal outline titles: %w", err)
	}

	return &outline, nil
}
