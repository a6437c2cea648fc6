package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// sessionClaims is the wire shape of the JWT payload. The user id travels in
// the registered subject claim, the role as a private claim.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed session tokens.
type TokenService struct {
	secret     []byte
	ttl        time.Duration
	revocation ports.RevocationStore
	log        zerolog.Logger
}

func NewTokenService(secret string, ttl time.Duration, revocation ports.RevocationStore, log zerolog.Logger) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, revocation: revocation, log: log}
}

// Issue signs a token carrying the identity claims, expiring after the
// configured TTL. Recording last_login is the caller's job.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now().UTC()
	sc := sessionClaims{
		Role: claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sc)
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry, consults the revocation store, and
// returns the typed claims. Each failure mode maps to its own domain error so
// the HTTP layer can surface distinct messages.
func (s *TokenService) Validate(ctx context.Context, token string) (domain.Claims, error) {
	if token == "" {
		return domain.Claims{}, domain.ErrTokenMissing
	}

	var sc sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, domain.ErrTokenExpired
		}
		return domain.Claims{}, domain.ErrTokenMalformed
	}
	if !tkn.Valid || sc.Subject == "" || sc.Role == "" {
		return domain.Claims{}, domain.ErrTokenMalformed
	}

	if s.revocation != nil && sc.ID != "" {
		revoked, err := s.revocation.IsRevoked(ctx, sc.ID)
		if err != nil {
			// Revocation store being down must not lock everyone out.
			s.log.Warn().Err(err).Msg("revocation store unreachable, skipping check")
		} else if revoked {
			return domain.Claims{}, domain.ErrTokenRevoked
		}
	}

	return domain.Claims{UserID: sc.Subject, Role: sc.Role}, nil
}

// Revoke marks a valid token as unusable for the remainder of its lifetime.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if s.revocation == nil {
		return nil
	}

	var sc sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Already dead, nothing to revoke.
			return nil
		}
		return domain.ErrTokenMalformed
	}

	remaining := int64(time.Until(sc.ExpiresAt.Time).Seconds()) + 1
	if remaining <= 0 {
		return nil
	}
	return s.revocation.Revoke(ctx, sc.ID, remaining)
}

// newTokenID returns a random jti used to key the revocation store.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}
