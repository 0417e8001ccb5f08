package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"draftsmith/internal/domain"
	"draftsmith/internal/domain/models"
	"draftsmith/internal/domain/repositories"
	"draftsmith/internal/llm"
)

// In-memory repository fakes. They mirror the Postgres implementations'
// error contracts (owner-scoped not-found, unique-violation conflicts) so
// the services under test see the same behavior.

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*models.Project
	nextID   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if project.ID == "" {
		r.nextID++
		project.ID = fmt.Sprintf("project-%d", r.nextID)
	}
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id, ownerID string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok || project.OwnerID != ownerID {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.projects[id]
	return ok, nil
}

func (r *fakeProjectRepo) List(_ context.Context, ownerID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[project.ID]
	if !ok || existing.OwnerID != project.OwnerID {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}
	project.UpdatedAt = time.Now()
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[id]
	if !ok || existing.OwnerID != ownerID {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(r.projects, id)
	return nil
}

type fakeContentRepo struct {
	mu     sync.Mutex
	items  map[string]*models.ContentItem
	nextID int
	// setContentErr, when set, fails SetContent for the given item ID.
	setContentErr map[string]error
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		items:         make(map[string]*models.ContentItem),
		setContentErr: make(map[string]error),
	}
}

func (r *fakeContentRepo) Create(_ context.Context, item *models.ContentItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		r.nextID++
		item.ID = fmt.Sprintf("item-%d", r.nextID)
	}
	for _, existing := range r.items {
		if existing.ProjectID == item.ProjectID && existing.Ordinal == item.Ordinal {
			return &domain.ConflictError{
				Message:      "content item already exists at this ordinal",
				ResourceType: "content_item",
				ResourceID:   existing.ID,
			}
		}
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeContentRepo) GetByID(_ context.Context, id string) (*models.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("content item %s: %w", id, domain.ErrNotFound)
	}
	copied := *item
	return &copied, nil
}

func (r *fakeContentRepo) ListByProject(_ context.Context, projectID string) ([]models.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ContentItem
	for _, item := range r.items {
		if item.ProjectID == projectID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out, nil
}

func (r *fakeContentRepo) SetContent(_ context.Context, id string, content string) (*models.ContentItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.setContentErr[id]; ok {
		return nil, err
	}
	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("content item %s: %w", id, domain.ErrNotFound)
	}
	item.Content = &content
	item.IsGenerated = content != ""
	item.UpdatedAt = time.Now()
	copied := *item
	return &copied, nil
}

func (r *fakeContentRepo) UpdateTitle(_ context.Context, id, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("content item %s: %w", id, domain.ErrNotFound)
	}
	item.Title = title
	item.UpdatedAt = time.Now()
	return nil
}

func (r *fakeContentRepo) DeleteBeyondOrdinal(_ context.Context, projectID string, bound int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.ProjectID == projectID && item.Ordinal >= bound {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeOutlineRepo struct {
	mu       sync.Mutex
	outlines map[string]*models.Outline // keyed by project ID
	nextID   int
}

func newFakeOutlineRepo() *fakeOutlineRepo {
	return &fakeOutlineRepo{outlines: make(map[string]*models.Outline)}
}

func (r *fakeOutlineRepo) Upsert(_ context.Context, outline *models.Outline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.outlines[outline.ProjectID]; ok {
		outline.ID = existing.ID
		outline.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		outline.ID = fmt.Sprintf("outline-%d", r.nextID)
		outline.CreatedAt = time.Now()
	}
	outline.UpdatedAt = time.Now()
	copied := *outline
	copied.Titles = append([]string(nil), outline.Titles...)
	r.outlines[outline.ProjectID] = &copied
	return nil
}

func (r *fakeOutlineRepo) GetByProject(_ context.Context, projectID string) (*models.Outline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	outline, ok := r.outlines[projectID]
	if !ok {
		return nil, fmt.Errorf("outline for project %s: %w", projectID, domain.ErrNotFound)
	}
	copied := *outline
	copied.Titles = append([]string(nil), outline.Titles...)
	return &copied, nil
}

type fakeRefinementRepo struct {
	mu      sync.Mutex
	records []models.Refinement
	nextID  int
}

func newFakeRefinementRepo() *fakeRefinementRepo {
	return &fakeRefinementRepo{}
}

func (r *fakeRefinementRepo) Append(_ context.Context, refinement *models.Refinement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	refinement.ID = fmt.Sprintf("refinement-%d", r.nextID)
	r.records = append(r.records, *refinement)
	return nil
}

func (r *fakeRefinementRepo) ListByItem(_ context.Context, contentItemID string) ([]models.Refinement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Refinement{}
	for _, record := range r.records {
		if record.ContentItemID == contentItemID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeRevisionRepo struct {
	mu        sync.Mutex
	revisions []models.Revision
	nextID    int
	// conflictNext simulates a concurrent snapshot stealing the number:
	// the next Insert fails with a conflict, then behavior returns to normal.
	conflictNext bool
}

func newFakeRevisionRepo() *fakeRevisionRepo {
	return &fakeRevisionRepo{}
}

func (r *fakeRevisionRepo) Insert(_ context.Context, revision *models.Revision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflictNext {
		r.conflictNext = false
		// The racing snapshot claimed this number.
		taken := *revision
		r.nextID++
		taken.ID = fmt.Sprintf("revision-%d", r.nextID)
		taken.CreatedBy = "someone else"
		r.revisions = append(r.revisions, taken)
		return &domain.ConflictError{
			Message:      fmt.Sprintf("revision %d already exists", revision.RevisionNumber),
			ResourceType: "revision",
			ResourceID:   taken.ID,
		}
	}
	for _, existing := range r.revisions {
		if existing.ProjectID == revision.ProjectID && existing.RevisionNumber == revision.RevisionNumber {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("revision %d already exists", revision.RevisionNumber),
				ResourceType: "revision",
				ResourceID:   existing.ID,
			}
		}
	}
	r.nextID++
	revision.ID = fmt.Sprintf("revision-%d", r.nextID)
	r.revisions = append(r.revisions, *revision)
	return nil
}

func (r *fakeRevisionRepo) NextNumber(_ context.Context, projectID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for _, revision := range r.revisions {
		if revision.ProjectID == projectID && revision.RevisionNumber > max {
			max = revision.RevisionNumber
		}
	}
	return max + 1, nil
}

func (r *fakeRevisionRepo) ListByProject(_ context.Context, projectID string) ([]models.Revision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Revision{}
	for _, revision := range r.revisions {
		if revision.ProjectID == projectID {
			out = append(out, revision)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RevisionNumber < out[j].RevisionNumber })
	return out, nil
}

func (r *fakeRevisionRepo) GetByNumber(_ context.Context, projectID string, number int) (*models.Revision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, revision := range r.revisions {
		if revision.ProjectID == projectID && revision.RevisionNumber == number {
			copied := revision
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("revision %d: %w", number, domain.ErrNotFound)
}

// fakeTxManager runs the function directly; the fakes have no transactions.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeProvider records every request and answers via the respond function,
// or with a canned echo of the prompt's first line when none is set.
type fakeProvider struct {
	mu      sync.Mutex
	respond func(req llm.Request) (string, error)
	calls   []llm.Request
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Generate(_ context.Context, req llm.Request) (string, error) {
	p.mu.Lock()
	p.calls = append(p.calls, req)
	respond := p.respond
	p.mu.Unlock()
	if respond != nil {
		return respond(req)
	}
	line, _, _ := strings.Cut(req.Prompt, "\n")
	return "draft for: " + strings.TrimSpace(line), nil
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
