package service

import (
	"context"
	"errors"
	"testing"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
)

func TestRevisionNumbersAreSequential(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "Intro")

	actor := models.Actor{UserID: "owner", Username: "alice"}

	first, err := env.revisionSvc.CreateRevision(context.Background(), project.ID, actor)
	if err != nil {
		t.Fatalf("first revision: %v", err)
	}
	second, err := env.revisionSvc.CreateRevision(context.Background(), project.ID, actor)
	if err != nil {
		t.Fatalf("second revision: %v", err)
	}

	if first.RevisionNumber != 1 || second.RevisionNumber != 2 {
		t.Errorf("numbers = %d, %d; want 1, 2", first.RevisionNumber, second.RevisionNumber)
	}
	if first.CreatedBy != "alice" {
		t.Errorf("created_by = %q", first.CreatedBy)
	}
}

func TestRevisionNumberConflictRetries(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "Intro")

	// Simulate a concurrent snapshot claiming number 1 first.
	env.revisions.conflictNext = true

	revision, err := env.revisionSvc.CreateRevision(context.Background(), project.ID, models.Actor{UserID: "owner"})
	if err != nil {
		t.Fatalf("revision after conflict: %v", err)
	}
	if revision.RevisionNumber != 2 {
		t.Errorf("retried revision number = %d, want 2", revision.RevisionNumber)
	}

	revisions, err := env.revisionSvc.ListRevisions(context.Background(), project.ID, "owner")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Both the racing snapshot and ours exist, gapless.
	if len(revisions) != 2 {
		t.Fatalf("got %d revisions, want 2", len(revisions))
	}
	for i, r := range revisions {
		if r.RevisionNumber != i+1 {
			t.Errorf("revision %d has number %d", i, r.RevisionNumber)
		}
	}
}

func TestRevisionSnapshotIsImmutable(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	items := env.mustSaveOutline(t, "owner", project.ID, "Intro")

	if _, err := env.contentSvc.SetContent(context.Background(), items[0].ID, "owner", "v1 text"); err != nil {
		t.Fatalf("set content: %v", err)
	}

	revision, err := env.revisionSvc.CreateRevision(context.Background(), project.ID, models.Actor{UserID: "owner"})
	if err != nil {
		t.Fatalf("create revision: %v", err)
	}

	// Edit the live item afterwards.
	if _, err := env.contentSvc.SetContent(context.Background(), items[0].ID, "owner", "v2 text"); err != nil {
		t.Fatalf("set content: %v", err)
	}

	got, err := env.revisionSvc.GetRevision(context.Background(), project.ID, "owner", revision.RevisionNumber)
	if err != nil {
		t.Fatalf("get revision: %v", err)
	}
	if len(got.Snapshot.Items) != 1 {
		t.Fatalf("snapshot has %d items", len(got.Snapshot.Items))
	}
	if got.Snapshot.Items[0].Content == nil || *got.Snapshot.Items[0].Content != "v1 text" {
		t.Errorf("snapshot content changed: %v", got.Snapshot.Items[0].Content)
	}
	if got.Snapshot.Type != models.ProjectTypeWord {
		t.Errorf("snapshot type = %q", got.Snapshot.Type)
	}
}

func TestRevisionOnEmptyProject(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Bare", "word")

	_, err := env.revisionSvc.CreateRevision(context.Background(), project.ID, models.Actor{UserID: "owner"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGetRevisionNotFound(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "Intro")

	_, err := env.revisionSvc.GetRevision(context.Background(), project.ID, "owner", 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
