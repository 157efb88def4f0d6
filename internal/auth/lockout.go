package auth

import (
	"time"

	"consulting-api/internal/domain"
)

// LockoutPolicy decides when repeated failed logins lock an account and for
// how long. Thresholds come from configuration; the policy itself holds no
// per-account state.
type LockoutPolicy struct {
	Threshold int
	LockFor   time.Duration
}

// Locked reports whether the account is under an active lock at now.
// A locked_until in the past is stale and does not count.
func (p LockoutPolicy) Locked(acct *domain.Account, now time.Time) bool {
	return acct.LockedUntil != nil && acct.LockedUntil.After(now)
}

// TriggersLock reports whether the given failure count reaches the lock
// threshold.
func (p LockoutPolicy) TriggersLock(failedAttempts int) bool {
	return failedAttempts >= p.Threshold
}

// LockUntil computes the expiry of a lock imposed at now.
func (p LockoutPolicy) LockUntil(now time.Time) time.Time {
	return now.Add(p.LockFor)
}
