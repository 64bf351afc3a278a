package request

import "workorder_engine/internal/domain/permissions"

const (
	CheckModeAny = "any"
	CheckModeAll = "all"
)

// PermissionCheckRequest asks whether a role holds any or all of a set of permissions.
type PermissionCheckRequest struct {
	Role        string   `json:"role" binding:"required"`
	Permissions []string `json:"permissions"`
	Mode        string   `json:"mode" binding:"omitempty,oneof=any all"`
}

func (r PermissionCheckRequest) ResolveMode() string {
	if r.Mode == "" {
		return CheckModeAll
	}
	return r.Mode
}

func (r PermissionCheckRequest) ResolvePermissions() []permissions.Permission {
	out := make([]permissions.Permission, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		out = append(out, permissions.Permission(p))
	}
	return out
}
