package models

import "time"

// Role is the access level carried by a user account and embedded in every
// issued token. Matching is exact; there is no role hierarchy.
type Role string

const (
	// RoleSuperadmin grants cross-tenant administrative access.
	RoleSuperadmin Role = "SUPERADMIN"

	// RoleAdmin grants tenant-scoped staff access.
	RoleAdmin Role = "ADMIN"

	// RoleAgency is the legacy tenant role kept for older accounts.
	RoleAgency Role = "AGENCY"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleSuperadmin || r == RoleAdmin || r == RoleAgency
}

// User represents a staff account used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	ID string `json:"id"`

	// AgencyID is the owning tenant. Nil for the global superadmin.
	AgencyID *string `json:"agencyId"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier, stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is the access level of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
