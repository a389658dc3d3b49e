package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so responses carry no user-enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongPassword is returned by change-password when the supplied
	// current password does not match the stored hash.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrAgencyInactive is returned when a non-superadmin tries to log in
	// while the owning agency is missing or deactivated.
	ErrAgencyInactive = errors.New("agency is missing or inactive")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// Field-level validation errors surfaced as 400 responses.
	ErrNameRequired     = errors.New("name is required")
	ErrSlugRequired     = errors.New("slug is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrStatusRequired   = errors.New("isActive must be a boolean")
	ErrPasswordTooShort = errors.New("password is required (min 6)")

	// Logo upload validation errors.
	ErrLogoTypeNotAllowed = errors.New("logo content type must be png, jpeg, webp or svg")
	ErrLogoTooLarge       = errors.New("logo exceeds the maximum size of 7 MiB")
	ErrLogoDataInvalid    = errors.New("logo data must be valid base64")
)
