package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
	RoleViewer = "Viewer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrSelfRoleChange = errors.New("cannot change your own role via this interface")
var ErrSelfDelete = errors.New("cannot delete your own user account via this interface")

// IsValidRole reports whether role belongs to the closed role set.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor || role == RoleViewer
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}
