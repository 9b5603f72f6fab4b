package booking

import "errors"

// Sentinel errors returned by engine operations. Handlers branch with
// errors.Is and map them to HTTP status codes.
var (
	// ErrValidation marks malformed or missing input. Caller's fault,
	// never worth retrying. Maps to 400.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a referenced identity that does not exist.
	// Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a state precondition violation: a ride that is no
	// longer pending, a hotel with no rooms left. Distinct from ErrNotFound
	// so callers can tell "doesn't exist" from "exists but unavailable".
	// Maps to 409.
	ErrConflict = errors.New("conflict")

	// ErrStorage wraps opaque store failures. The engine never retries;
	// retries are the caller's responsibility. Maps to 500.
	ErrStorage = errors.New("storage error")
)
