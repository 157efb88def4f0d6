package repository

import (
	"context"
	"errors"
	"time"

	"consulting-api/internal/domain"
)

var (
	// ErrNotFound is returned when no record matches the given key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned by Create when the store's unique email
	// constraint rejects the insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines persistence operations for Account records.
//
// Login-path writes are targeted methods rather than a generic partial
// update so implementations can perform them as single atomic statements:
// concurrent failed logins against one account must not under-count the
// lockout trigger.
type AccountRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, acct *domain.Account) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)

	// RecordFailedAttempt atomically increments the failure counter and, when
	// the new count reaches lockThreshold, sets locked_until to lockUntil.
	RecordFailedAttempt(ctx context.Context, id string, lockThreshold int, lockUntil time.Time) error
	// ResetLoginState clears the failure counter and any lock, and stamps
	// last_login. Called on successful authentication.
	ResetLoginState(ctx context.Context, id string, lastLogin time.Time) error
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
	UpdateProfile(ctx context.Context, id string, upd domain.AccountUpdate) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
