package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/services"
	"draftsmith/internal/llm"
)

func TestGenerateAllItems(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "Intro", "Middle", "End")

	report, err := env.generationSvc.Generate(context.Background(), project.ID, &services.GenerateRequest{
		OwnerID:     "owner",
		GenerateAll: true,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if report.GeneratedCount != 3 || report.FailedCount != 0 {
		t.Fatalf("report = %d generated / %d failed, want 3/0", report.GeneratedCount, report.FailedCount)
	}
	if len(report.Items) != 3 {
		t.Fatalf("got %d item results, want 3", len(report.Items))
	}

	items, err := env.contentSvc.GetItems(context.Background(), project.ID, "owner")
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	for _, item := range items {
		if !item.IsGenerated || item.Text() == "" {
			t.Errorf("item %q not generated: %q", item.Title, item.Text())
		}
	}
}

func TestGeneratePassesPreviousTitles(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "First", "Second")

	_, err := env.generationSvc.Generate(context.Background(), project.ID, &services.GenerateRequest{
		OwnerID:     "owner",
		GenerateAll: true,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := env.provider.callCount(); got != 2 {
		t.Fatalf("provider called %d times, want 2", got)
	}
	// The second prompt mentions the first section for continuity.
	second := env.provider.calls[1].Prompt
	if !strings.Contains(second, "First") {
		t.Errorf("second prompt is missing the previous title:\n%s", second)
	}
}

func TestGeneratePartialFailure(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	env.mustSaveOutline(t, "owner", project.ID, "Good", "Bad", "AlsoGood")

	env.provider.respond = func(req llm.Request) (string, error) {
		if strings.Contains(req.Prompt, `"Bad"`) {
			return "", errors.New("upstream timeout")
		}
		return "fine text", nil
	}

	report, err := env.generationSvc.Generate(context.Background(), project.ID, &services.GenerateRequest{
		OwnerID:     "owner",
		GenerateAll: true,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if report.GeneratedCount != 2 || report.FailedCount != 1 {
		t.Fatalf("report = %d/%d, want 2 generated 1 failed", report.GeneratedCount, report.FailedCount)
	}

	var failed, succeeded int
	for _, result := range report.Items {
		if result.Generated {
			succeeded++
			if result.Error != "" {
				t.Errorf("successful item %q carries error %q", result.Title, result.Error)
			}
		} else {
			failed++
			if result.Title != "Bad" {
				t.Errorf("wrong item failed: %q", result.Title)
			}
			if result.Error == "" {
				t.Error("failed item has no error message")
			}
		}
	}
	if failed != 1 || succeeded != 2 {
		t.Errorf("results: %d failed %d ok", failed, succeeded)
	}

	// The failed item's stored content is untouched.
	items, _ := env.contentSvc.GetItems(context.Background(), project.ID, "owner")
	for _, item := range items {
		if item.Title == "Bad" && item.IsGenerated {
			t.Error("failed item must not be marked generated")
		}
	}
}

func TestGenerateDefaultSkipsGeneratedItems(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Handbook", "word")
	items := env.mustSaveOutline(t, "owner", project.ID, "Done", "Pending")

	if _, err := env.contentSvc.SetContent(context.Background(), items[0].ID, "owner", "already written"); err != nil {
		t.Fatalf("set content: %v", err)
	}

	report, err := env.generationSvc.Generate(context.Background(), project.ID, &services.GenerateRequest{
		OwnerID: "owner",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if report.GeneratedCount != 1 {
		t.Fatalf("generated %d, want 1", report.GeneratedCount)
	}
	if len(report.Items) != 1 || report.Items[0].Title != "Pending" {
		t.Fatalf("unexpected report items: %+v", report.Items)
	}

	// The existing content stayed.
	got, _ := env.contentSvc.GetItem(context.Background(), project.ID, items[0].ID, "owner")
	if got.Text() != "already written" {
		t.Errorf("existing content overwritten: %q", got.Text())
	}
}

func TestGenerateExplicitItemIDs(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Deck", "powerpoint")
	items := env.mustSaveOutline(t, "owner", project.ID, "One", "Two", "Three")

	report, err := env.generationSvc.Generate(context.Background(), project.ID, &services.GenerateRequest{
		OwnerID: "owner",
		ItemIDs: []string{items[1].ID},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(report.Items) != 1 || report.Items[0].ItemID != items[1].ID {
		t.Fatalf("unexpected report: %+v", report.Items)
	}
}

func TestGenerateWithoutOutline(t *testing.T) {
	env := newTestEnv(t)
	project := env.mustCreateProject(t, "owner", "Bare", "word")

	_, err := env.generationSvc.Generate(context.Background(), project.ID, &services.GenerateRequest{
		OwnerID:     "owner",
		GenerateAll: true,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
