// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleEntrepreneur is a business owner managing a single company.
	RoleEntrepreneur Role = "ENTREPRENEUR"
	// RoleSuperAdmin is a platform operator.
	RoleSuperAdmin Role = "SUPERADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEntrepreneur, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
