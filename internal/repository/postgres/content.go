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

// PostgresContentItemRepository implements the ContentItemRepository interface
type PostgresContentItemRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewContentItemRepository creates a new content item repository
func NewContentItemRepository(config *RepositoryConfig) repositories.ContentItemRepository {
	return &PostgresContentItemRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new item at its ordinal
func (r *PostgresContentItemRepository) Create(ctx context.Context, item *models.ContentItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, ordinal, title, content, is_generated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, r.tables.ContentItems)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		item.ID,
		item.ProjectID,
		item.Ordinal,
		item.Title,
		item.Content,
		item.IsGenerated,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("ordinal %d is already taken in project %s", item.Ordinal, item.ProjectID),
				ResourceType: "content item",
				ResourceID:   item.ID,
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", item.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create content item: %w", err)
	}

	return nil
}

// GetByID retrieves a single item
func (r *PostgresContentItemRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, ordinal, title, content, is_generated, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.ContentItems)

	var item models.ContentItem
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.ProjectID,
		&item.Ordinal,
		&item.Title,
		&item.Content,
		&item.IsGenerated,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("content item %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get content item: %w", err)
	}

	return &item, nil
}

// ListByProject retrieves all items of a project in ordinal order
func (r *PostgresContentItemRepository) ListByProject(ctx context.Context, projectID string) ([]models.ContentItem, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, ordinal, title, content, is_generated, created_at, updated_at
		FROM %s
		WHERE project_id = $1
		ORDER BY ordinal ASC
	`, r.tables.ContentItems)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()

	var items []models.ContentItem
	for rows.Next() {
		var item models.ContentItem
		err := rows.Scan(
			&item.ID,
			&item.ProjectID,
			&item.Ordinal,
			&item.Title,
			&item.Content,
			&item.IsGenerated,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content items: %w", err)
	}

	if items == nil {
		items = []models.ContentItem{}
	}

	return items, nil
}

// SetContent overwrites an item's text. is_generated follows from the text
// being non-empty, which keeps the flag truthful after manual clears too.
func (r *PostgresContentItemRepository) SetContent(ctx context.Context, id string, content string) (*models.ContentItem, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $1, is_generated = ($1 <> ''), updated_at = NOW()
		WHERE id = $2
		RETURNING id, project_id, ordinal, title, content, is_generated, created_at, updated_at
	`, r.tables.ContentItems)

	var item models.ContentItem
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, content, id).Scan(
		&item.ID,
		&item.ProjectID,
		&item.Ordinal,
		&item.Title,
		&item.Content,
		&item.IsGenerated,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("content item %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("set content: %w", err)
	}

	return &item, nil
}

// UpdateTitle renames an item in place, keeping its content
func (r *PostgresContentItemRepository) UpdateTitle(ctx context.Context, id, title string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, updated_at = NOW()
		WHERE id = $2
	`, r.tables.ContentItems)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, title, id)
	if err != nil {
		return fmt.Errorf("update content item title: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("content item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteBeyondOrdinal removes items whose ordinal is >= bound
func (r *PostgresContentItemRepository) DeleteBeyondOrdinal(ctx context.Context, projectID string, bound int) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE project_id = $1 AND ordinal >= $2
	`, r.tables.ContentItems)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID, bound); err != nil {
		return fmt.Errorf("delete content items beyond ordinal %d: %w", bound, err)
	}

	return nil
}
