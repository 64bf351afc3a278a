// Package permissions maps roles to their fixed permission sets.
//
// The role table is a total function: every known role has an explicit entry
// (possibly empty) and any other role resolves to the empty set.
package permissions

import "fmt"

type Role string

const (
	RoleEmployee      Role = "Employee"
	RoleExternalAdmin Role = "ExternalAdmin"
	RoleInternalAdmin Role = "InternalAdmin"
)

// AllRoles lists the known roles.
func AllRoles() []Role {
	return []Role{RoleEmployee, RoleExternalAdmin, RoleInternalAdmin}
}

func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

type Permission string

const (
	WorkOrderView           Permission = "work_order:view"
	WorkOrderViewAllClients Permission = "work_order:view_all_clients"
	WorkOrderCreate         Permission = "work_order:create"
	WorkOrderCancel         Permission = "work_order:cancel"
	WorkOrderReopen         Permission = "work_order:reopen"
	WorkOrderChangePriority Permission = "work_order:change_priority"
	WorkOrderUpload         Permission = "work_order:upload"

	NTEView    Permission = "nte:view"
	NTEApprove Permission = "nte:approve"
	NTEDeny    Permission = "nte:deny"

	NoteCreate Permission = "note:create"

	UsersManage Permission = "user:manage"
)

// AllPermissions lists every permission the service knows about.
func AllPermissions() []Permission {
	return []Permission{
		WorkOrderView,
		WorkOrderViewAllClients,
		WorkOrderCreate,
		WorkOrderCancel,
		WorkOrderReopen,
		WorkOrderChangePriority,
		WorkOrderUpload,
		NTEView,
		NTEApprove,
		NTEDeny,
		NoteCreate,
		UsersManage,
	}
}

var employeePermissions = []Permission{
	WorkOrderView,
	WorkOrderCreate,
	WorkOrderUpload,
	NTEView,
	NoteCreate,
}

var externalAdminPermissions = append(append([]Permission{}, employeePermissions...),
	WorkOrderCancel,
	WorkOrderReopen,
	WorkOrderChangePriority,
	NTEApprove,
	NTEDeny,
	UsersManage,
)

var internalAdminPermissions = append(append([]Permission{}, externalAdminPermissions...),
	WorkOrderViewAllClients,
)

// PermissionsFor returns a copy of the role's permission set.
func PermissionsFor(role Role) []Permission {
	var src []Permission
	switch role {
	case RoleEmployee:
		src = employeePermissions
	case RoleExternalAdmin:
		src = externalAdminPermissions
	case RoleInternalAdmin:
		src = internalAdminPermissions
	default:
		src = nil
	}
	return append([]Permission(nil), src...)
}

func HasPermission(role Role, permission Permission) bool {
	for _, p := range PermissionsFor(role) {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission is false for an empty list.
func HasAnyPermission(role Role, perms []Permission) bool {
	for _, p := range perms {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions is true for an empty list when the role is known.
// Unknown roles never pass.
func HasAllPermissions(role Role, perms []Permission) bool {
	if !isKnown(role) {
		return false
	}
	for _, p := range perms {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

func isKnown(role Role) bool {
	_, err := ParseRole(string(role))
	return err == nil
}
