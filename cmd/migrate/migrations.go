package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"draftsmith/internal/repository/postgres"
)

// runMigrations creates the schema. Statements are idempotent so the
// command can run on every deploy.
func runMigrations(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				owner_id TEXT NOT NULL,
				name TEXT NOT NULL,
				description TEXT,
				project_type TEXT NOT NULL CHECK (project_type IN ('word', 'powerpoint')),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Projects),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS idx_%s_owner ON %s(owner_id)`,
			tables.Projects, tables.Projects),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				project_id UUID NOT NULL UNIQUE REFERENCES %s(id) ON DELETE CASCADE,
				titles JSONB NOT NULL DEFAULT '[]'::jsonb,
				context TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Outlines, tables.Projects),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				project_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				ordinal INTEGER NOT NULL,
				title TEXT NOT NULL,
				content TEXT,
				is_generated BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (project_id, ordinal)
			)`, tables.ContentItems, tables.Projects),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				content_item_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				prompt TEXT,
				content TEXT NOT NULL,
				feedback TEXT NOT NULL DEFAULT '' CHECK (feedback IN ('', 'like', 'dislike')),
				comments TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Refinements, tables.ContentItems),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS idx_%s_item_created ON %s(content_item_id, created_at)`,
			tables.Refinements, tables.Refinements),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				project_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				revision_number INTEGER NOT NULL,
				snapshot JSONB NOT NULL,
				created_by TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (project_id, revision_number)
			)`, tables.Revisions, tables.Projects),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}

	return nil
}

// dropAll removes every table this service owns, children first.
func dropAll(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	for _, table := range []string{
		tables.Revisions,
		tables.Refinements,
		tables.ContentItems,
		tables.Outlines,
		tables.Projects,
	} {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
