package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// UserService covers the admin-facing user operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	// AssignRole sets a user's role. The actor may not reassign their own
	// role, and the role must belong to the closed role set.
	AssignRole(ctx context.Context, actorID, userID, role string) error
	// Delete removes a user. The actor may not delete themself.
	Delete(ctx context.Context, actorID, userID string) error
}
