package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"draftsmith/internal/repository/postgres"
)

// DemoSeeder loads a small demo dataset so a fresh environment has
// something to click on. Fixed UUIDs and ON CONFLICT DO NOTHING make it
// safe to run repeatedly.
type DemoSeeder struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewDemoSeeder creates a new demo seeder
func NewDemoSeeder(pool *pgxpool.Pool, tables *postgres.TableNames, logger *slog.Logger) *DemoSeeder {
	return &DemoSeeder{
		pool:   pool,
		tables: tables,
		logger: logger,
	}
}

const (
	demoProjectID = "11111111-1111-1111-1111-111111111111"
	demoItem1ID   = "22222222-2222-2222-2222-222222222201"
	demoItem2ID   = "22222222-2222-2222-2222-222222222202"
	demoItem3ID   = "22222222-2222-2222-2222-222222222203"
)

// Seed creates one word project with an outline, three items (one already
// generated), and a refinement record on the generated item.
func (s *DemoSeeder) Seed(ctx context.Context, ownerID string) error {
	now := time.Now()

	query := `INSERT INTO ` + s.tables.Projects + ` (id, owner_id, name, description, project_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, query, demoProjectID, ownerID,
		"Remote Work Handbook", "Demo project seeded for development", "word", now, now); err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	titles := []string{"Introduction", "Communication Norms", "Tooling"}
	titlesJSON, err := json.Marshal(titles)
	if err != nil {
		return err
	}

	query = `INSERT INTO ` + s.tables.Outlines + ` (id, project_id, titles, context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (project_id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, query,
		"44444444-4444-4444-4444-444444444401", demoProjectID, titlesJSON,
		"A practical handbook for distributed teams.", now, now); err != nil {
		return fmt.Errorf("seed outline: %w", err)
	}

	items := []struct {
		id      string
		ordinal int
		title   string
		content string
	}{
		{demoItem1ID, 0, titles[0], "Remote work is here to stay. This handbook collects the practices that keep our distributed team effective."},
		{demoItem2ID, 1, titles[1], ""},
		{demoItem3ID, 2, titles[2], ""},
	}
	for _, item := range items {
		query = `INSERT INTO ` + s.tables.ContentItems + ` (id, project_id, ordinal, title, content, is_generated, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`
		if _, err := s.pool.Exec(ctx, query, item.id, demoProjectID,
			item.ordinal, item.title, item.content, item.content != "", now, now); err != nil {
			return fmt.Errorf("seed item %d: %w", item.ordinal, err)
		}
	}

	query = `INSERT INTO ` + s.tables.Refinements + ` (id, content_item_id, prompt, content, feedback, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, query,
		"33333333-3333-3333-3333-333333333301", demoItem1ID,
		"Make the opening more direct",
		"Remote work is here to stay. This handbook collects the practices that keep our distributed team effective.",
		"like", nil, now); err != nil {
		return fmt.Errorf("seed refinement: %w", err)
	}

	s.logger.Info("demo data seeded",
		"project_id", demoProjectID,
		"owner_id", ownerID,
		"items", len(items),
	)

	return nil
}

// Clear removes all rows from every table, children first. Schema stays.
func (s *DemoSeeder) Clear(ctx context.Context) error {
	for _, table := range []string{
		s.tables.Revisions,
		s.tables.Refinements,
		s.tables.ContentItems,
		s.tables.Outlines,
		s.tables.Projects,
	} {
		if _, err := s.pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
