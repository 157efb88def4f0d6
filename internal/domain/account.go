package domain

import "time"

// Role enumerates the access levels an account can hold.
type Role string

const (
	RoleMember  Role = "member"
	RoleAdmin   Role = "admin"
	RolePremium Role = "premium"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleMember, RoleAdmin, RolePremium:
		return true
	}
	return false
}

// AccountStatus enumerates account lifecycle states.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountDisabled AccountStatus = "disabled"
)

// Account is the canonical user record. The password hash and lockout
// bookkeeping never leave the service layer.
type Account struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	Status         AccountStatus
	CreatedAt      time.Time
	LastLogin      *time.Time
	FailedAttempts int
	LockedUntil    *time.Time
}

// AccountUpdate carries optional profile fields for partial updates.
// Nil fields are left untouched.
type AccountUpdate struct {
	Name   *string
	Role   *Role
	Status *AccountStatus
}
