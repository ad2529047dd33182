package domain

import "time"

// UserRole represents the kind of customer-app account.
type UserRole string

const (
	UserRoleCustomer   UserRole = "customer"
	UserRoleStoreAdmin UserRole = "store_admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

// User is a customer-app account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         UserRole  `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"` // empty for seeded demo accounts
	CreatedAt    time.Time `json:"created_at"`
}

// HasPassword returns true if the account must be verified against a stored hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// ProfileUpdate carries optional profile changes; nil fields are left untouched.
type ProfileUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string
}
