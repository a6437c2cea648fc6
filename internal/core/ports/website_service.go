package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// GenerateSiteInput carries the prompt parameters for site generation.
type GenerateSiteInput struct {
	OwnerID      string
	BusinessType string
	Industry     string
}

// UpdateSiteInput is a partial update. When Content is non-empty only the
// given content keys are touched; otherwise Fields replaces top-level values.
type UpdateSiteInput struct {
	Content map[string]any
	Fields  map[string]any
}

// WebsiteSummary is the lightweight listing projection.
type WebsiteSummary struct {
	ID           string `json:"id"`
	BusinessType string `json:"business_type"`
	Industry     string `json:"industry"`
	OwnerID      string `json:"owner_id"`
}

type WebsiteService interface {
	// Generate asks the content generator for a structured site and persists
	// it under the owner. Content without service items is rejected.
	Generate(ctx context.Context, in GenerateSiteInput) (*domain.Website, error)
	List(ctx context.Context) ([]WebsiteSummary, error)
	Get(ctx context.Context, id string) (*domain.Website, error)
	// Update and Delete enforce the ownership rule: Editors may only touch
	// sites they own, Admins may touch any.
	Update(ctx context.Context, actor domain.Claims, id string, in UpdateSiteInput) error
	Delete(ctx context.Context, actor domain.Claims, id string) error
	// Preview returns the rendered content without authentication.
	Preview(ctx context.Context, id string) (*domain.WebsiteContent, error)
}
