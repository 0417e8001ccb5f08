package service

import (
	"context"
	"errors"
	"testing"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/services"
)

func TestSaveOutlineCreatesItems(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")

	items := env.mustSaveOutline(t, "owner", project.ID, "Intro", "Middle", "End")

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i, item := range items {
		if item.Ordinal != i {
			t.Errorf("item %d ordinal = %d", i, item.Ordinal)
		}
		if item.IsGenerated {
			t.Errorf("item %d should start ungenerated", i)
		}
	}
	if items[0].Title != "Intro" || items[2].Title != "End" {
		t.Errorf("titles out of order: %q %q %q", items[0].Title, items[1].Title, items[2].Title)
	}
}

func TestSaveOutlineRenameKeepsContent(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	items := env.mustSaveOutline(t, "owner", project.ID, "Intro", "Middle")

	if _, err := env.contentSvc.SetContent(context.Background(), items[0].ID, "owner", "some text"); err != nil {
		t.Fatalf("set content: %v", err)
	}

	// Rename ordinal 0, keep ordinal 1.
	items = env.mustSaveOutline(t, "owner", project.ID, "Introduction", "Middle")

	if items[0].Title != "Introduction" {
		t.Errorf("title = %q, want Introduction", items[0].Title)
	}
	if items[0].ID == "" || items[0].Text() != "some text" {
		t.Errorf("rename lost content: %q", items[0].Text())
	}
	if !items[0].IsGenerated {
		t.Error("rename should keep is_generated")
	}
}

func TestSaveOutlineShrinkDeletesTail(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "A", "B", "C")

	items := env.mustSaveOutline(t, "owner", project.ID, "A")

	if len(items) != 1 {
		t.Fatalf("got %d items after shrink, want 1", len(items))
	}
	if items[0].Title != "A" {
		t.Errorf("surviving title = %q", items[0].Title)
	}
}

func TestSaveOutlineValidation(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")

	tests := []struct {
		name   string
		titles []string
	}{
		{"empty outline", nil},
		{"blank title", []string{"ok", "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.outlineSvc.SaveOutline(context.Background(), project.ID, &services.SaveOutlineRequest{
				OwnerID: "owner",
				Titles:  tt.titles,
			})
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOutlineForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "Intro")

	// The project exists but belongs to someone else: forbidden, not 404.
	_, err := env.outlineSvc.GetOutline(context.Background(), project.ID, "intruder")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}

	_, err = env.outlineSvc.SaveOutline(context.Background(), project.ID, &services.SaveOutlineRequest{
		OwnerID: "intruder",
		Titles:  []string{"Hijack"},
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected forbidden on save, got %v", err)
	}
}
