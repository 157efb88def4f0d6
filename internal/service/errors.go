package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCredentials covers both a wrong password and a missing
	// account, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail is returned when registration hits an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned when an id does not resolve to a record.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable wraps repository failures so storage-specific error
	// text never reaches callers.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports malformed or missing input. The reason is safe to
// return to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AccountLockedError signals that authentication is temporarily refused for
// the account, regardless of password correctness.
type AccountLockedError struct {
	Until time.Time
}

func (e *AccountLockedError) Error() string {
	return "account temporarily locked due to failed login attempts"
}

func storeFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
