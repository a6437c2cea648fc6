package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/siteforge/siteforge-api/internal/api/metrics"
	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

// ACLService resolves role permissions and gates requests. It implements both
// ports.PermissionResolver and ports.AuthorizationGate.
type ACLService struct {
	perms  ports.PermissionRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewACLService(perms ports.PermissionRepository, tokens ports.TokenService, log zerolog.Logger) *ACLService {
	return &ACLService{perms: perms, tokens: tokens, log: log}
}

// ResolvePermissions fetches the persisted mapping. On first access it seeds
// the store with the default table; on storage failure it falls back to the
// defaults instead of failing the request. Authorization stays operative even
// when the permission store is unreachable.
func (s *ACLService) ResolvePermissions(ctx context.Context) domain.RolePermissions {
	stored, err := s.perms.Get(ctx)
	if err == nil {
		return stored
	}

	defaults := domain.DefaultRolePermissions()

	if errors.Is(err, domain.ErrPermissionMapNotFound) {
		// Insert-if-absent: racing first resolvers all land on one document.
		if seedErr := s.perms.SeedDefault(ctx, defaults); seedErr != nil {
			s.log.Warn().Err(seedErr).Msg("failed to seed default permissions")
			metrics.PermissionFallbacksTotal.Inc()
		} else {
			s.log.Info().Msg("seeded default role permissions")
		}
		return defaults
	}

	s.log.Warn().Err(err).Msg("permission store unreachable, using default permissions")
	metrics.PermissionFallbacksTotal.Inc()
	return defaults
}

// IsPermitted checks a role and permission against a resolved mapping.
func (s *ACLService) IsPermitted(perms domain.RolePermissions, role, permission string) error {
	if !perms.HasRole(role) {
		return fmt.Errorf("%w: role '%s' has no defined permissions", domain.ErrRoleNotRecognized, role)
	}
	if !perms.Allows(role, permission) {
		return fmt.Errorf("%w: missing '%s' permission for role '%s'", domain.ErrPermissionDenied, permission, role)
	}
	return nil
}

// Authorize validates the bearer token, resolves permissions, and checks the
// required permission. It returns the identity claims on success so callers
// can apply ownership rules.
func (s *ACLService) Authorize(ctx context.Context, token, permission string) (domain.Claims, error) {
	claims, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return domain.Claims{}, err
	}

	perms := s.ResolvePermissions(ctx)
	if err := s.IsPermitted(perms, claims.Role, permission); err != nil {
		return domain.Claims{}, err
	}

	return claims, nil
}
