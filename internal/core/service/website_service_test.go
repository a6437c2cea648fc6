package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

type stubWebsiteRepo struct {
	sites  map[string]*domain.Website
	nextID int

	updates map[string]map[string]any
}

func newStubWebsiteRepo() *stubWebsiteRepo {
	return &stubWebsiteRepo{
		sites:   make(map[string]*domain.Website),
		updates: make(map[string]map[string]any),
		nextID:  1,
	}
}

func (r *stubWebsiteRepo) Insert(_ context.Context, site *domain.Website) (string, error) {
	id := fmt.Sprintf("site_%d", r.nextID)
	r.nextID++
	copied := *site
	copied.ID = id
	r.sites[id] = &copied
	return id, nil
}

func (r *stubWebsiteRepo) FindByID(_ context.Context, id string) (*domain.Website, error) {
	site, ok := r.sites[id]
	if !ok {
		return nil, domain.ErrWebsiteNotFound
	}
	copied := *site
	return &copied, nil
}

func (r *stubWebsiteRepo) FindAll(_ context.Context) ([]domain.Website, error) {
	all := make([]domain.Website, 0, len(r.sites))
	for _, site := range r.sites {
		all = append(all, *site)
	}
	return all, nil
}

func (r *stubWebsiteRepo) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	if _, ok := r.sites[id]; !ok {
		return domain.ErrWebsiteNotFound
	}
	r.updates[id] = fields
	return nil
}

func (r *stubWebsiteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sites[id]; !ok {
		return domain.ErrWebsiteNotFound
	}
	delete(r.sites, id)
	return nil
}

type stubGenerator struct {
	content *domain.WebsiteContent
	err     error
}

func (g *stubGenerator) Generate(_ context.Context, _, _ string) (*domain.WebsiteContent, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.content, nil
}

func sampleContent() *domain.WebsiteContent {
	return &domain.WebsiteContent{
		Title:       "Fresh Bakes",
		HeroSection: domain.HeroSection{Heading: "Fresh Bakes", Subheading: "Sourdough daily"},
		ServicesSection: domain.ServicesSection{
			Heading: "What we offer",
			Items:   []domain.ServiceItem{{Title: "Custom cakes", Description: "Made to order"}},
		},
	}
}

func seedSite(t *testing.T, repo *stubWebsiteRepo, ownerID string) *domain.Website {
	t.Helper()
	id, err := repo.Insert(context.Background(), &domain.Website{
		OwnerID:      ownerID,
		BusinessType: "bakery",
		Industry:     "food",
		Content:      *sampleContent(),
	})
	if err != nil {
		t.Fatalf("seed site: %v", err)
	}
	site, _ := repo.FindByID(context.Background(), id)
	return site
}

func TestWebsiteService_Generate(t *testing.T) {
	repo := newStubWebsiteRepo()
	gen := &stubGenerator{content: sampleContent()}
	svc := NewWebsiteService(repo, gen, time.Second, zerolog.Nop())

	site, err := svc.Generate(context.Background(), ports.GenerateSiteInput{
		OwnerID:      "user_1",
		BusinessType: "bakery",
		Industry:     "food",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if site.ID == "" {
		t.Fatalf("generated site has no id")
	}
	if site.OwnerID != "user_1" {
		t.Fatalf("owner not recorded: %q", site.OwnerID)
	}

	stored, err := repo.FindByID(context.Background(), site.ID)
	if err != nil {
		t.Fatalf("generated site not persisted: %v", err)
	}
	if len(stored.Content.ServicesSection.Items) == 0 {
		t.Fatalf("stored content lost its services")
	}
}

func TestWebsiteService_Generate_GeneratorError(t *testing.T) {
	repo := newStubWebsiteRepo()
	gen := &stubGenerator{err: errors.New("upstream 500")}
	svc := NewWebsiteService(repo, gen, time.Second, zerolog.Nop())

	_, err := svc.Generate(context.Background(), ports.GenerateSiteInput{OwnerID: "user_1", BusinessType: "bakery"})
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if len(repo.sites) != 0 {
		t.Fatalf("failed generation must not persist anything")
	}
}

func TestWebsiteService_Generate_NoServices(t *testing.T) {
	repo := newStubWebsiteRepo()
	gen := &stubGenerator{content: &domain.WebsiteContent{
		HeroSection: domain.HeroSection{Heading: "Empty"},
	}}
	svc := NewWebsiteService(repo, gen, time.Second, zerolog.Nop())

	_, err := svc.Generate(context.Background(), ports.GenerateSiteInput{OwnerID: "user_1", BusinessType: "bakery"})
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("content without services must fail, got %v", err)
	}
	if len(repo.sites) != 0 {
		t.Fatalf("rejected content must not persist")
	}
}

func TestWebsiteService_Update_ContentFields(t *testing.T) {
	repo := newStubWebsiteRepo()
	site := seedSite(t, repo, "editor_1")
	svc := NewWebsiteService(repo, &stubGenerator{}, time.Second, zerolog.Nop())

	actor := domain.Claims{UserID: "editor_1", Role: domain.RoleEditor}
	err := svc.Update(context.Background(), actor, site.ID, ports.UpdateSiteInput{
		Content: map[string]any{"hero": map[string]any{"title": "New Title"}},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	fields := repo.updates[site.ID]
	if _, ok := fields["content.hero"]; !ok {
		t.Fatalf("content keys must be written under dotted paths, got %v", fields)
	}
	if _, ok := fields["last_updated"]; !ok {
		t.Fatalf("update must bump last_updated")
	}
}

func TestWebsiteService_Update_TopLevelFields(t *testing.T) {
	repo := newStubWebsiteRepo()
	site := seedSite(t, repo, "editor_1")
	svc := NewWebsiteService(repo, &stubGenerator{}, time.Second, zerolog.Nop())

	actor := domain.Claims{UserID: "admin_1", Role: domain.RoleAdmin}
	err := svc.Update(context.Background(), actor, site.ID, ports.UpdateSiteInput{
		Fields: map[string]any{"business_type": "cafe", "_id": "forged", "id": "forged"},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	fields := repo.updates[site.ID]
	if fields["business_type"] != "cafe" {
		t.Fatalf("top-level field not applied: %v", fields)
	}
	if _, ok := fields["_id"]; ok {
		t.Fatalf("identifier keys must be stripped from updates")
	}
	if _, ok := fields["id"]; ok {
		t.Fatalf("identifier keys must be stripped from updates")
	}
}

func TestWebsiteService_Update_NoFields(t *testing.T) {
	repo := newStubWebsiteRepo()
	site := seedSite(t, repo, "editor_1")
	svc := NewWebsiteService(repo, &stubGenerator{}, time.Second, zerolog.Nop())

	actor := domain.Claims{UserID: "admin_1", Role: domain.RoleAdmin}
	err := svc.Update(context.Background(), actor, site.ID, ports.UpdateSiteInput{
		Fields: map[string]any{"_id": "forged"},
	})
	if !errors.Is(err, domain.ErrNoUpdateFields) {
		t.Fatalf("expected ErrNoUpdateFields, got %v", err)
	}
}

func TestWebsiteService_Update_EditorNotOwner(t *testing.T) {
	repo := newStubWebsiteRepo()
	site := seedSite(t, repo, "editor_1")
	svc := NewWebsiteService(repo, &stubGenerator{}, time.Second, zerolog.Nop())

	actor := domain.Claims{UserID: "editor_2", Role: domain.RoleEditor}
	err := svc.Update(context.Background(), actor, site.ID, ports.UpdateSiteInput{
		Fields: map[string]any{"business_type": "cafe"},
	})
	if !errors.Is(err, domain.ErrOwnershipRequired) {
		t.Fatalf("expected ErrOwnershipRequired, got %v", err)
	}
	if len(repo.updates) != 0 {
		t.Fatalf("ownership rejection must not write")
	}
}

func TestWebsiteService_Delete_Ownership(t *testing.T) {
	repo := newStubWebsiteRepo()
	site := seedSite(t, repo, "editor_1")
	svc := NewWebsiteService(repo, &stubGenerator{}, time.Second, zerolog.Nop())

	stranger := domain.Claims{UserID: "editor_2", Role: domain.RoleEditor}
	if err := svc.Delete(context.Background(), stranger, site.ID); !errors.Is(err, domain.ErrOwnershipRequired) {
		t.Fatalf("expected ErrOwnershipRequired, got %v", err)
	}

	// Admins bypass the ownership rule.
	admin := domain.Claims{UserID: "admin_1", Role: domain.RoleAdmin}
	if err := svc.Delete(context.Background(), admin, site.ID); err != nil {
		t.Fatalf("admin delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), site.ID); !errors.Is(err, domain.ErrWebsiteNotFound) {
		t.Fatalf("site still present after delete")
	}
}

func TestWebsiteService_List(t *testing.T) {
	repo := newStubWebsiteRepo()
	seedSite(t, repo, "editor_1")
	seedSite(t, repo, "editor_2")
	svc := NewWebsiteService(repo, &stubGenerator{}, time.Second, zerolog.Nop())

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	for _, s := range summaries {
		if s.ID == "" || s.BusinessType == "" {
			t.Fatalf("summary missing fields: %+v", s)
		}
	}
}

func TestWebsiteService_Preview(t *testing.T) {
	repo := newStubWebsiteRepo()
	site := seedSite(t, repo, "editor_1")
	svc := NewWebsiteService(repo, &stubGenerator{}, time.Second, zerolog.Nop())

	content, err := svc.Preview(context.Background(), site.ID)
	if err != nil {
		t.Fatalf("Preview returned error: %v", err)
	}
	if content.HeroSection.Heading != "Fresh Bakes" {
		t.Fatalf("preview content mismatch: %+v", content)
	}

	if _, err := svc.Preview(context.Background(), "missing"); !errors.Is(err, domain.ErrWebsiteNotFound) {
		t.Fatalf("expected ErrWebsiteNotFound, got %v", err)
	}
}
