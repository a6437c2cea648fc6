package ports

import (
	"context"
	"time"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Every operation
// is a single-document call and relies on the store's own atomicity.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
