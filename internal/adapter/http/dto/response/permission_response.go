package response

import "workorder_engine/internal/domain/permissions"

type RolePermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type PermissionCheckResponse struct {
	Role        string   `json:"role"`
	Mode        string   `json:"mode"`
	Permissions []string `json:"permissions"`
	Allowed     bool     `json:"allowed"`
}

func FromRolePermissions(role permissions.Role) RolePermissionsResponse {
	return RolePermissionsResponse{Role: string(role), Permissions: permissionStrings(permissions.PermissionsFor(role))}
}

func permissionStrings(perms []permissions.Permission) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}

func NewPermissionCheckResponse(role permissions.Role, mode string, perms []permissions.Permission, allowed bool) PermissionCheckResponse {
	return PermissionCheckResponse{
		Role:        string(role),
		Mode:        mode,
		Permissions: permissionStrings(perms),
		Allowed:     allowed,
	}
}
