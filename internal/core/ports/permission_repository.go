package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// PermissionRepository persists the singleton role→permission mapping.
type PermissionRepository interface {
	// Get returns the stored mapping, or domain.ErrPermissionMapNotFound
	// when the singleton document has never been written.
	Get(ctx context.Context) (domain.RolePermissions, error)

	// SeedDefault writes the given mapping under the singleton key with
	// insert-if-absent semantics: concurrent callers racing on first access
	// must not error or duplicate the document.
	SeedDefault(ctx context.Context, defaults domain.RolePermissions) error
}
