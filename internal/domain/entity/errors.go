package entity

import (
	"errors"
	"fmt"
)

// Error taxonomy for the service. Callers classify failures with errors.Is
// and the API layer maps each class to an HTTP status.
var (
	// ErrConfiguration marks a missing or invalid client-side configuration,
	// detected before any network or database activity.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation marks rejected caller input.
	ErrValidation = errors.New("validation error")

	// ErrUpstream marks a non-success response from an external provider.
	ErrUpstream = errors.New("upstream error")

	// ErrRateLimited marks an upstream rate-limit rejection. It also
	// satisfies errors.Is(err, ErrUpstream).
	ErrRateLimited = fmt.Errorf("%w: rate limited", ErrUpstream)

	// ErrNotFound marks a missing row for a point lookup.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks failed credential or token verification.
	ErrUnauthorized = errors.New("unauthorized")
)
