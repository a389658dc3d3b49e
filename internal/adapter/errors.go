package adapter

import "errors"

var (
	// ErrNotConfigured is returned when object-store credentials are absent
	// and the upload feature is therefore unavailable.
	ErrNotConfigured = errors.New("object store is not configured")

	// ErrUpstreamFailure is returned when the object-store API answers with
	// a non-success status or the call itself fails.
	ErrUpstreamFailure = errors.New("object store upload failed")
)
