package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// PermissionResolver resolves the role→permission mapping for a request.
type PermissionResolver interface {
	// ResolvePermissions returns the persisted mapping, lazily seeding the
	// store with the defaults on first access. A storage failure is never
	// surfaced: the hardcoded default table is returned instead.
	ResolvePermissions(ctx context.Context) domain.RolePermissions
	// IsPermitted checks role membership and permission membership against
	// a resolved mapping.
	IsPermitted(perms domain.RolePermissions, role, permission string) error
}

// AuthorizationGate admits or rejects a bearer token for a required
// permission. It composes token validation with permission resolution and
// must run before any side-effecting operation.
type AuthorizationGate interface {
	Authorize(ctx context.Context, token, permission string) (domain.Claims, error)
}
