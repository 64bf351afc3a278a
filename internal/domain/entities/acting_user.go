package entities

import (
	"strings"

	"workorder_engine/internal/domain/permissions"
)

// ActingUser is the identity performing an operation. It is passed explicitly
// to every use case call.
type ActingUser struct {
	Email     string           `json:"email"`
	Name      string           `json:"name,omitempty"`
	Role      permissions.Role `json:"role"`
	Company   string           `json:"company,omitempty"`
	ClientRef string           `json:"client_ref,omitempty"`
}

// DisplayName is what ends up in ledger entries and notes.
func (u ActingUser) DisplayName() string {
	if n := strings.TrimSpace(u.Name); n != "" {
		return n
	}
	return strings.TrimSpace(u.Email)
}

func (u ActingUser) Can(p permissions.Permission) bool {
	return permissions.HasPermission(u.Role, p)
}

// CanSeeClient reports whether the user may read or mutate work orders of clientRef.
func (u ActingUser) CanSeeClient(clientRef string) bool {
	if u.Can(permissions.WorkOrderViewAllClients) {
		return true
	}
	return u.ClientRef != "" && u.ClientRef == clientRef
}
