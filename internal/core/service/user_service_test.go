package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, role string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: "$2a$04$irrelevant",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func TestUserService_AssignRole(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	target := seedUser(t, repo, "bob@example.com", domain.RoleViewer)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.AssignRole(context.Background(), admin.ID, target.ID, domain.RoleEditor); err != nil {
		t.Fatalf("AssignRole returned error: %v", err)
	}

	updated, err := repo.FindByID(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if updated.Role != domain.RoleEditor {
		t.Fatalf("role not updated, got %q", updated.Role)
	}
}

func TestUserService_AssignRole_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	target := seedUser(t, repo, "bob@example.com", domain.RoleViewer)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.AssignRole(context.Background(), admin.ID, target.ID, "Superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	unchanged, _ := repo.FindByID(context.Background(), target.ID)
	if unchanged.Role != domain.RoleViewer {
		t.Fatalf("rejected assignment mutated the role")
	}
}

func TestUserService_AssignRole_Self(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.AssignRole(context.Background(), admin.ID, admin.ID, domain.RoleViewer); !errors.Is(err, domain.ErrSelfRoleChange) {
		t.Fatalf("expected ErrSelfRoleChange, got %v", err)
	}

	unchanged, _ := repo.FindByID(context.Background(), admin.ID)
	if unchanged.Role != domain.RoleAdmin {
		t.Fatalf("self-assignment mutated the role")
	}
}

func TestUserService_AssignRole_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.AssignRole(context.Background(), admin.ID, "missing", domain.RoleEditor); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	target := seedUser(t, repo, "bob@example.com", domain.RoleViewer)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), admin.ID, target.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
}

func TestUserService_Delete_Self(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), admin.ID, admin.ID); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("rejected self-delete removed the user")
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin@example.com", domain.RoleAdmin)
	seedUser(t, repo, "bob@example.com", domain.RoleViewer)
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
