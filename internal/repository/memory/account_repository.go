package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

// AccountRepository is an in-memory AccountRepository for development and
// tests. All methods hold the mutex for the full read-modify-write, which
// gives the same per-account atomicity the sqlite implementation gets from
// single-statement updates.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	byEmail  map[string]string
}

func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
		byEmail:  make(map[string]string),
	}
}

func (r *AccountRepository) Init(ctx context.Context) error { return nil }

func (r *AccountRepository) Create(ctx context.Context, acct *domain.Account) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[acct.Email]; exists {
		return "", repository.ErrDuplicateEmail
	}

	if acct.ID == "" {
		acct.ID = uuid.NewString()
	}
	if acct.Role == "" {
		acct.Role = domain.RoleMember
	}
	if acct.Status == "" {
		acct.Status = domain.AccountActive
	}
	if acct.CreatedAt.IsZero() {
		acct.CreatedAt = time.Now().UTC()
	}

	stored := *acct
	r.accounts[acct.ID] = &stored
	r.byEmail[acct.Email] = acct.ID
	return acct.ID, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyAccount(r.accounts[id]), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyAccount(acct), nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.accounts))
	for _, acct := range r.accounts {
		accounts = append(accounts, *copyAccount(acct))
	}
	return accounts, nil
}

func (r *AccountRepository) RecordFailedAttempt(ctx context.Context, id string, lockThreshold int, lockUntil time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return repository.ErrNotFound
	}
	acct.FailedAttempts++
	if acct.FailedAttempts >= lockThreshold {
		until := lockUntil
		acct.LockedUntil = &until
	}
	return nil
}

func (r *AccountRepository) ResetLoginState(ctx context.Context, id string, lastLogin time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return repository.ErrNotFound
	}
	acct.FailedAttempts = 0
	acct.LockedUntil = nil
	at := lastLogin
	acct.LastLogin = &at
	return nil
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return repository.ErrNotFound
	}
	acct.PasswordHash = hash
	return nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, id string, upd domain.AccountUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return repository.ErrNotFound
	}
	if upd.Name != nil {
		acct.Name = *upd.Name
	}
	if upd.Role != nil {
		acct.Role = *upd.Role
	}
	if upd.Status != nil {
		acct.Status = *upd.Status
	}
	return nil
}

func (r *AccountRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return repository.ErrNotFound
	}
	ts := at
	acct.LastLogin = &ts
	return nil
}

func copyAccount(acct *domain.Account) *domain.Account {
	cp := *acct
	if acct.LastLogin != nil {
		t := *acct.LastLogin
		cp.LastLogin = &t
	}
	if acct.LockedUntil != nil {
		t := *acct.LockedUntil
		cp.LockedUntil = &t
	}
	return &cp
}
