package domain

import "errors"

// Permission names an allowed action. Handlers declare the permission a route
// requires; the resolved role→permission mapping decides admission.
const (
	PermCreateUser      = "create_user"
	PermReadUser        = "read_user"
	PermUpdateUser      = "update_user"
	PermDeleteUser      = "delete_user"
	PermAssignRole      = "assign_role"
	PermCreateSite      = "create_site"
	PermReadSite        = "read_site"
	PermUpdateSite      = "update_site"
	PermDeleteSite      = "delete_site"
	PermListAllSites    = "list_all_sites"
	PermManageRolePerms = "manage_roles_permissions"
)

var ErrPermissionMapNotFound = errors.New("permission map not found")
var ErrRoleNotRecognized = errors.New("role not recognized")
var ErrPermissionDenied = errors.New("permission denied")
var ErrOwnershipRequired = errors.New("access forbidden")

// RolePermissions maps a role name to the set of permissions it grants.
// The persisted singleton document fully replaces this table when present;
// it is never merged with the defaults.
type RolePermissions map[string][]string

// Allows reports whether the role grants the given permission.
func (rp RolePermissions) Allows(role, permission string) bool {
	perms, ok := rp[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}

// HasRole reports whether the role is present in the mapping at all.
func (rp RolePermissions) HasRole(role string) bool {
	_, ok := rp[role]
	return ok
}

// DefaultRolePermissions returns the hardcoded permission table used both as
// the initial seed for the permission store and as the fallback when the
// store is unreachable.
func DefaultRolePermissions() RolePermissions {
	return RolePermissions{
		RoleAdmin: {
			PermCreateUser, PermReadUser, PermUpdateUser, PermDeleteUser, PermAssignRole,
			PermCreateSite, PermReadSite, PermUpdateSite, PermDeleteSite, PermListAllSites,
			PermManageRolePerms,
		},
		RoleEditor: {
			PermCreateSite, PermReadSite, PermUpdateSite, PermDeleteSite, PermListAllSites,
		},
		RoleViewer: {
			PermReadSite, PermListAllSites,
		},
	}
}
