package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// ContentGenerator produces a structured website document from a business
// description. Implementations must honour ctx cancellation; callers bound
// every generation with a timeout.
type ContentGenerator interface {
	Generate(ctx context.Context, businessType, industry string) (*domain.WebsiteContent, error)
}
