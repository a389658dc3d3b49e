package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set issued at login and verified on every
// authenticated request. The standard "sub" claim carries the user ID; the
// tenant and role travel as private claims so the role gate and tenant
// scoping never need a database round trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	// AgencyID is the owning tenant of the authenticated user.
	// Nil for the global superadmin.
	AgencyID *string `json:"agencyId,omitempty"`

	// Role is the access level of the authenticated user.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// AgencyID is the tenant identifier extracted from the "agencyId" claim.
	AgencyID *string `json:"-"`

	// Role is the access level extracted from the "role" claim.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated caller attached to the request context by the
// auth middleware after token verification.
type Identity struct {
	UserID   string
	AgencyID *string
	Role     Role
}
