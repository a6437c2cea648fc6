package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/siteforge/siteforge-api/internal/core/domain"
	"github.com/siteforge/siteforge-api/internal/core/ports"
)

// UserService implements the admin-facing user operations.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// AssignRole sets a user's role. The role set is closed, and an actor may
// not reassign their own role.
func (s *UserService) AssignRole(ctx context.Context, actorID, userID, role string) error {
	if !domain.IsValidRole(role) {
		return domain.ErrInvalidRole
	}
	if actorID == userID {
		return domain.ErrSelfRoleChange
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("role", role).Msg("role assigned")
	return nil
}

// Delete removes a user. Self-deletion through the admin interface is
// rejected.
func (s *UserService) Delete(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return domain.ErrSelfDelete
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
