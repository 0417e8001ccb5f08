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

// PostgresRevisionRepository implements the RevisionRepository interface.
// Snapshots are stored as JSONB; the (project_id, revision_number) unique
// constraint is what makes concurrent snapshot numbering safe.
type PostgresRevisionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewRevisionRepository creates a new revision repository
func NewRevisionRepository(config *RepositoryConfig) repositories.RevisionRepository {
	return &PostgresRevisionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Insert writes a new revision with its number already assigned
func (r *PostgresRevisionRepository) Insert(ctx context.Context, revision *models.Revision) error {
	if revision.ID == "" {
		revision.ID = uuid.NewString()
	}

	snapshot, err := json.Marshal(revision.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, revision_number, snapshot, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`, r.tables.Revisions)

	executor := GetExecutor(ctx, r.pool)
	err = executor.QueryRow(ctx, query,
		revision.ID,
		revision.ProjectID,
		revision.RevisionNumber,
		snapshot,
		revision.CreatedBy,
	).Scan(&revision.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("revision %d of project %s already exists", revision.RevisionNumber, revision.ProjectID),
				ResourceType: "revision",
				ResourceID:   revision.ID,
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", revision.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert revision: %w", err)
	}

	return nil
}

// NextNumber returns max(revision_number)+1 for the project, 1 when none
// exist. Must run inside the same transaction as Insert to stay gapless.
func (r *PostgresRevisionRepository) NextNumber(ctx context.Context, projectID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(revision_number), 0) + 1
		FROM %s
		WHERE project_id = $1
	`, r.tables.Revisions)

	var next int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, projectID).Scan(&next); err != nil {
		return 0, fmt.Errorf("next revision number: %w", err)
	}

	return next, nil
}

// ListByProject retrieves all revisions in ascending number order
func (r *PostgresRevisionRepository) ListByProject(ctx context.Context, projectID string) ([]models.Revision, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, revision_number, snapshot, created_by, created_at
		FROM %s
		WHERE project_id = $1
		ORDER BY revision_number ASC
	`, r.tables.Revisions)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var revisions []models.Revision
	for rows.Next() {
		revision, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, *revision)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}

	if revisions == nil {
		revisions = []models.Revision{}
	}

	return revisions, nil
}

// GetByNumber retrieves one revision of a project by its number
func (r *PostgresRevisionRepository) GetByNumber(ctx context.Context, projectID string, number int) (*models.Revision, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, revision_number, snapshot, created_by, created_at
		FROM %s
		WHERE project_id = $1 AND revision_number = $2
	`, r.tables.Revisions)

	executor := GetExecutor(ctx, r.pool)
	row := executor.QueryRow(ctx, query, projectID, number)

	revision, err := scanRevision(row)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("revision %d of project %s: %w", number, projectID, domain.ErrNotFound)
		}
		return nil, err
	}

	return revision, nil
}

// scanner is the common subset of pgx.Row and pgx.Rows used here.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRevision(row scanner) (*models.Revision, error) {
	var revision models.Revision
	var snapshot []byte

	err := row.Scan(
		&revision.ID,
		&revision.ProjectID,
		&revision.RevisionNumber,
		&snapshot,
		&revision.CreatedBy,
		&revision.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &revision.Snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &revision, nil
}
