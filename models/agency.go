package models

import "time"

// Agency is the tenant entity. Every user (except the global superadmin) and
// every voucher belongs to exactly one agency. An inactive agency blocks both
// staff login and public voucher lookup for its records.
type Agency struct {
	// ID is the unique identifier of the agency (UUID string).
	ID string `json:"id"`

	// Name is the display name of the agency.
	Name string `json:"name"`

	// Slug is the unique, lower-cased URL identifier of the agency.
	Slug string `json:"slug"`

	// Phone is an optional contact phone number.
	Phone *string `json:"phone"`

	// Email is an optional contact e-mail address.
	Email *string `json:"email"`

	// IsActive controls whether the tenant is enabled. Deactivated agencies
	// cannot log in and their vouchers are hidden from the public lookup.
	IsActive bool `json:"isActive"`

	// LogoUrl points at the agency logo in the object store, if one was set.
	LogoUrl *string `json:"logoUrl"`

	// PrimaryColor is the branding accent color (e.g. "#0055ff"), if set.
	PrimaryColor *string `json:"primaryColor"`

	// CreatedAt is the timestamp when the agency was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Agency model.
func (a Agency) TableName() string {
	return "agencies"
}

// PublicProjection returns the restricted view of the agency that is safe to
// embed in public voucher responses. The active flag and creation time are
// deliberately omitted.
func (a Agency) PublicProjection() AgencyPublic {
	return AgencyPublic{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		Phone:        a.Phone,
		Email:        a.Email,
		LogoUrl:      a.LogoUrl,
		PrimaryColor: a.PrimaryColor,
	}
}

// AgencyPublic is the agency projection embedded in public voucher responses.
type AgencyPublic struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	LogoUrl      *string `json:"logoUrl"`
	PrimaryColor *string `json:"primaryColor"`
}
