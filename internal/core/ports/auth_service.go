package ports

import (
	"context"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

type AuthService interface {
	// Signup registers a new user with the default Viewer role.
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a session token on success.
	// A failed login never mutates last_login.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
