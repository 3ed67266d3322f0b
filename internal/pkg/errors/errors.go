package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable marks datastore reads that failed; callers must not
	// downgrade it to an empty result.
	ErrUnavailable = errors.New("datastore unavailable")
)
