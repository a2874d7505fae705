package errs

import "errors"

// The five error kinds every operation surfaces to the caller. Handlers map
// them to HTTP statuses with errors.Is; services wrap them with context.
var (
	// ErrNotFound - requested user, content item or category does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredential - password mismatch on login or password change.
	// Login deliberately returns this for unknown emails too, so a caller
	// cannot probe which addresses are registered.
	ErrInvalidCredential = errors.New("invalid email or password")

	// ErrUnauthorized - the session lacks the role required for the action.
	ErrUnauthorized = errors.New("insufficient permissions")

	// ErrValidation - a required field is missing or has a bad value.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream - the relational store or object store failed in a way not
	// otherwise classified.
	ErrUpstream = errors.New("upstream service failure")
)
