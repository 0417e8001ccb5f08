package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/services"
	"draftsmith/internal/prompts"
	serviceAuth "draftsmith/internal/service/auth"
)

// testEnv wires every service against in-memory fakes.
type testEnv struct {
	projects    *fakeProjectRepo
	content     *fakeContentRepo
	outlines    *fakeOutlineRepo
	refinements *fakeRefinementRepo
	revisions   *fakeRevisionRepo
	provider    *fakeProvider

	projectSvc    services.ProjectService
	outlineSvc    services.OutlineService
	contentSvc    services.ContentService
	generationSvc services.GenerationService
	refinementSvc services.RefinementService
	revisionSvc   services.RevisionService
	exportSvc     services.ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	registry, err := prompts.NewRegistry()
	if err != nil {
		t.Fatalf("load prompt templates: %v", err)
	}

	env := &testEnv{
		projects:    newFakeProjectRepo(),
		content:     newFakeContentRepo(),
		outlines:    newFakeOutlineRepo(),
		refinements: newFakeRefinementRepo(),
		revisions:   newFakeRevisionRepo(),
		provider:    &fakeProvider{},
	}

	authorizer := serviceAuth.NewOwnerBasedAuthorizer(env.projects, env.content)
	txManager := fakeTxManager{}

	env.projectSvc = NewProjectService(env.projects, logger)
	env.outlineSvc = NewOutlineService(env.outlines, env.content, authorizer, txManager, logger)
	env.contentSvc = NewContentService(env.content, authorizer, logger)
	env.generationSvc = NewGenerationService(env.outlines, env.content, authorizer, env.provider, registry, logger)
	env.refinementSvc = NewRefinementService(env.content, env.refinements, authorizer, env.provider, registry, logger)
	env.revisionSvc = NewRevisionService(env.revisions, env.content, txManager, authorizer, logger)
	env.exportSvc = NewExportService(env.content, authorizer, logger)

	return env
}

func (e *testEnv) mustCreateProject(t *testing.T, ownerID, name, projectType string) *models.Project {
	t.Helper()
	project, err := e.projectSvc.CreateProject(context.Background(), &services.CreateProjectRequest{
		OwnerID: ownerID,
		Name:    name,
		Type:    projectType,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return project
}

func (e *testEnv) mustSaveOutline(t *testing.T, ownerID, projectID string, titles ...string) []models.ContentItem {
	t.Helper()
	_, err := e.outlineSvc.SaveOutline(context.Background(), projectID, &services.SaveOutlineRequest{
		OwnerID: ownerID,
		Titles:  titles,
	})
	if err != nil {
		t.Fatalf("save outline: %v", err)
	}
	items, err := e.contentSvc.GetItems(context.Background(), projectID, ownerID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	return items
}

func strPtr(s string) *string { return &s }
