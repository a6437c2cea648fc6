package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/siteforge/siteforge-api/internal/api/metrics"
	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

// BearerToken extracts the bearer token from the Authorization header.
// Returns "" when no well-formed bearer credential is present.
func BearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// Permission gates a route on a required permission. It runs the
// authorization gate before the handler: token validation failures surface as
// distinct 401s, permission failures as 403s, and the resolved identity
// claims are injected into the request context on success.
func Permission(gate ports.AuthorizationGate, permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)

			claims, err := gate.Authorize(c.Request().Context(), token, permission)
			if err != nil {
				countRejection(err, permission)
				return err
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func countRejection(err error, permission string) {
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
	case errors.Is(err, domain.ErrTokenExpired):
		metrics.AuthRejectionsTotal.WithLabelValues("expired").Inc()
	case errors.Is(err, domain.ErrTokenRevoked):
		metrics.AuthRejectionsTotal.WithLabelValues("revoked").Inc()
	case errors.Is(err, domain.ErrTokenNotFresh):
		metrics.AuthRejectionsTotal.WithLabelValues("not_fresh").Inc()
	case errors.Is(err, domain.ErrTokenMalformed):
		metrics.AuthRejectionsTotal.WithLabelValues("malformed").Inc()
	case errors.Is(err, domain.ErrRoleNotRecognized), errors.Is(err, domain.ErrPermissionDenied):
		metrics.PermissionDenialsTotal.WithLabelValues(permission).Inc()
	}
}
