package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

// TokenService mints and verifies signed session tokens.
type TokenService interface {
	// Issue embeds the identity claims and signs a token expiring after the
	// configured TTL.
	Issue(claims domain.Claims) (string, error)
	// Validate verifies signature and expiry, checks the revocation store,
	// and extracts the typed claims. Failures return one of the domain
	// token errors (missing, malformed, expired, revoked).
	Validate(ctx context.Context, token string) (domain.Claims, error)
	// Revoke marks a still-valid token as unusable until its natural expiry.
	Revoke(ctx context.Context, token string) error
}

// RevocationStore records revoked token identifiers until they expire.
type RevocationStore interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, ttlSeconds int64) error
}
