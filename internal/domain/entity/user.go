// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// UserStatus tracks whether a user still has to replace the generated password.
type UserStatus string

const (
	// UserStatusActive is a user that already chose their own password.
	UserStatusActive UserStatus = "ACTIVE"
	// UserStatusForcePasswordChange is a freshly provisioned user holding a generated password.
	UserStatusForcePasswordChange UserStatus = "FORCE_PASSWORD_CHANGE"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusForcePasswordChange:
		return true
	default:
		return false
	}
}

// User is the platform record attached to an auth identity.
type User struct {
	ID        string     // Same value as the auth provider's identity id (uid).
	Email     string     // Login email, always lowercased.
	Status    UserStatus // ACTIVE or FORCE_PASSWORD_CHANGE.
	Role      Role       // ENTREPRENEUR or SUPERADMIN.
	CompanyID string     // Tenant owned by this user. Empty until the company is created.
	CreatedAt time.Time  // Timestamp of when this user record was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// HasCompany reports whether the user is already linked to a tenant.
func (u *User) HasCompany() bool {
	return u != nil && u.CompanyID != ""
}
