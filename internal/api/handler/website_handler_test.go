package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

type stubWebsiteService struct {
	site    *domain.Website
	content *domain.WebsiteContent

	generateErr error
	updateErr   error
	deleteErr   error
	getErr      error

	gotActor  domain.Claims
	gotInput  ports.GenerateSiteInput
	gotUpdate ports.UpdateSiteInput
}

func (s *stubWebsiteService) Generate(_ context.Context, in ports.GenerateSiteInput) (*domain.Website, error) {
	s.gotInput = in
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.site, nil
}

func (s *stubWebsiteService) List(_ context.Context) ([]ports.WebsiteSummary, error) {
	return []ports.WebsiteSummary{
		{ID: "site_1", BusinessType: "bakery", Industry: "food", OwnerID: "user_1"},
	}, nil
}

func (s *stubWebsiteService) Get(_ context.Context, _ string) (*domain.Website, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.site, nil
}

func (s *stubWebsiteService) Update(_ context.Context, actor domain.Claims, _ string, in ports.UpdateSiteInput) error {
	s.gotActor = actor
	s.gotUpdate = in
	return s.updateErr
}

func (s *stubWebsiteService) Delete(_ context.Context, actor domain.Claims, _ string) error {
	s.gotActor = actor
	return s.deleteErr
}

func (s *stubWebsiteService) Preview(_ context.Context, _ string) (*domain.WebsiteContent, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.content, nil
}

func sampleSite() *domain.Website {
	return &domain.Website{
		ID:           "site_1",
		OwnerID:      "user_1",
		BusinessType: "bakery",
		Industry:     "food",
		Content: domain.WebsiteContent{
			Title: "Fresh Bakes",
			ServicesSection: domain.ServicesSection{
				Items: []domain.ServiceItem{{Title: "Custom cakes"}},
			},
		},
		CreatedAt:   time.Now().UTC(),
		LastUpdated: time.Now().UTC(),
	}
}

func TestWebsiteHandler_Generate(t *testing.T) {
	svc := &stubWebsiteService{site: sampleSite()}
	h := NewWebsiteHandler(svc)

	c, rec := newAdminTestContext(http.MethodPost, "/api/generate",
		`{"business_type":"bakery","industry":"food"}`,
		&domain.Claims{UserID: "user_1", Role: domain.RoleEditor})

	if err := h.Generate(c); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp generateSiteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Preview != "/preview/site_1" {
		t.Fatalf("unexpected preview url: %q", resp.Preview)
	}
	// The owner comes from the verified claims, never from the payload.
	if svc.gotInput.OwnerID != "user_1" {
		t.Fatalf("owner not taken from claims: %q", svc.gotInput.OwnerID)
	}
}

func TestWebsiteHandler_Generate_MissingFields(t *testing.T) {
	h := NewWebsiteHandler(&stubWebsiteService{})

	c, _ := newAdminTestContext(http.MethodPost, "/api/generate",
		`{"business_type":"bakery"}`,
		&domain.Claims{UserID: "user_1", Role: domain.RoleEditor})

	err := h.Generate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestWebsiteHandler_Generate_Failure(t *testing.T) {
	svc := &stubWebsiteService{generateErr: domain.ErrGenerationFailed}
	h := NewWebsiteHandler(svc)

	c, _ := newAdminTestContext(http.MethodPost, "/api/generate",
		`{"business_type":"bakery","industry":"food"}`,
		&domain.Claims{UserID: "user_1", Role: domain.RoleEditor})

	if err := h.Generate(c); !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed to propagate, got %v", err)
	}
}

func TestWebsiteHandler_List(t *testing.T) {
	h := NewWebsiteHandler(&stubWebsiteService{})

	c, rec := newAdminTestContext(http.MethodGet, "/api", "",
		&domain.Claims{UserID: "user_1", Role: domain.RoleAdmin})

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []websiteSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(out) != 1 || out[0].ID != "site_1" {
		t.Fatalf("unexpected summaries: %+v", out)
	}
}

func TestWebsiteHandler_Update_ContentBody(t *testing.T) {
	svc := &stubWebsiteService{}
	h := NewWebsiteHandler(svc)

	c, rec := newAdminTestContext(http.MethodPut, "/api/site_1",
		`{"content":{"title":"New Title"}}`,
		&domain.Claims{UserID: "user_1", Role: domain.RoleEditor})
	c.SetParamNames("id")
	c.SetParamValues("site_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotUpdate.Content["title"] != "New Title" {
		t.Fatalf("content body not routed to Content: %+v", svc.gotUpdate)
	}
	if len(svc.gotUpdate.Fields) != 0 {
		t.Fatalf("content body must not populate Fields: %+v", svc.gotUpdate)
	}
}

func TestWebsiteHandler_Update_FlatBody(t *testing.T) {
	svc := &stubWebsiteService{}
	h := NewWebsiteHandler(svc)

	c, _ := newAdminTestContext(http.MethodPut, "/api/site_1",
		`{"business_type":"cafe"}`,
		&domain.Claims{UserID: "user_1", Role: domain.RoleEditor})
	c.SetParamNames("id")
	c.SetParamValues("site_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if svc.gotUpdate.Fields["business_type"] != "cafe" {
		t.Fatalf("flat body not routed to Fields: %+v", svc.gotUpdate)
	}
}

func TestWebsiteHandler_Update_EmptyBody(t *testing.T) {
	h := NewWebsiteHandler(&stubWebsiteService{})

	c, _ := newAdminTestContext(http.MethodPut, "/api/site_1", `{}`,
		&domain.Claims{UserID: "user_1", Role: domain.RoleEditor})
	c.SetParamNames("id")
	c.SetParamValues("site_1")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %v", err)
	}
}

func TestWebsiteHandler_Update_NotOwner(t *testing.T) {
	svc := &stubWebsiteService{updateErr: domain.ErrOwnershipRequired}
	h := NewWebsiteHandler(svc)

	c, _ := newAdminTestContext(http.MethodPut, "/api/site_1",
		`{"business_type":"cafe"}`,
		&domain.Claims{UserID: "user_2", Role: domain.RoleEditor})
	c.SetParamNames("id")
	c.SetParamValues("site_1")

	if err := h.Update(c); !errors.Is(err, domain.ErrOwnershipRequired) {
		t.Fatalf("expected ErrOwnershipRequired to propagate, got %v", err)
	}
}

func TestWebsiteHandler_Delete(t *testing.T) {
	svc := &stubWebsiteService{}
	h := NewWebsiteHandler(svc)

	c, rec := newAdminTestContext(http.MethodDelete, "/api/site_1", "",
		&domain.Claims{UserID: "admin_1", Role: domain.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("site_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotActor.Role != domain.RoleAdmin {
		t.Fatalf("actor claims not forwarded: %+v", svc.gotActor)
	}
}

func TestWebsiteHandler_Preview(t *testing.T) {
	svc := &stubWebsiteService{content: &sampleSite().Content}
	h := NewWebsiteHandler(svc)

	// No claims set: preview is public.
	c, rec := newAdminTestContext(http.MethodGet, "/preview/site_1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("site_1")

	if err := h.Preview(c); err != nil {
		t.Fatalf("Preview returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var content domain.WebsiteContent
	if err := json.Unmarshal(rec.Body.Bytes(), &content); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if content.Title != "Fresh Bakes" {
		t.Fatalf("unexpected content: %+v", content)
	}
}

func TestWebsiteHandler_Preview_NotFound(t *testing.T) {
	svc := &stubWebsiteService{getErr: domain.ErrWebsiteNotFound}
	h := NewWebsiteHandler(svc)

	c, _ := newAdminTestContext(http.MethodGet, "/preview/missing", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Preview(c); !errors.Is(err, domain.ErrWebsiteNotFound) {
		t.Fatalf("expected ErrWebsiteNotFound to propagate, got %v", err)
	}
}
