// Package adapter contains outbound HTTP integrations. The only one today is
// the object-store client used for agency logo uploads.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import "context"

// ObjectStore is the contract for the external binary store holding agency
// logos.
type ObjectStore interface {
	// Configured reports whether store credentials are present. When false,
	// upload endpoints answer 503 without attempting any upstream call.
	Configured() bool

	// Upload stores data under the given object path, overwriting any
	// previous object, and returns the public URL of the stored object.
	// Returns [ErrNotConfigured] when credentials are missing and
	// [ErrUpstreamFailure] when the store rejects the call.
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}
