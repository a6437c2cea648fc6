package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// WebsiteRepository defines the interface for website document persistence.
type WebsiteRepository interface {
	Insert(ctx context.Context, site *domain.Website) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Website, error)
	FindAll(ctx context.Context) ([]domain.Website, error)
	// UpdateFields applies a partial $set-style update. Keys may use dotted
	// paths (e.g. "content.title") to touch nested content values.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
