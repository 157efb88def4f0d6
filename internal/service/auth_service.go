package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"consulting-api/internal/auth"
	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

// AuthService orchestrates registration, login, profile access and password
// changes over the account store.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, accountID string) (*domain.Account, error)
	ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error
}

// AuthResult carries a freshly issued session token and the public view of
// the authenticated account.
type AuthResult struct {
	Token   string
	Account *domain.Account
}

// AuthConfig holds the process-wide authentication policy, resolved once at
// startup.
type AuthConfig struct {
	Secret            []byte
	TokenTTL          time.Duration
	Lockout           auth.LockoutPolicy
	PasswordMinLength int
}

type authService struct {
	accounts repository.AccountRepository
	cfg      AuthConfig
}

func NewAuthService(accounts repository.AccountRepository, cfg AuthConfig) AuthService {
	return &authService{accounts: accounts, cfg: cfg}
}

// NormalizeEmail lowercases and trims an email for use as the account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, name, email, password string, role domain.Role) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "Missing required field: name"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "Missing required field: email"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "Missing required field: password"}
	}
	if !auth.ValidateEmail(email) {
		return nil, &ValidationError{Field: "email", Reason: "Invalid email format"}
	}
	if ok, reason := auth.ValidatePassword(password, s.cfg.PasswordMinLength); !ok {
		return nil, &ValidationError{Field: "password", Reason: reason}
	}
	if role == "" {
		role = domain.RoleMember
	} else if !domain.ValidRole(role) {
		return nil, &ValidationError{Field: "role", Reason: "Invalid role"}
	}

	// Advisory pre-check for a friendly error; the store's unique index is
	// what actually guarantees one account per email.
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeFailure(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	acct := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.AccountActive,
	}
	if _, err := s.accounts.Create(ctx, acct); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, storeFailure(err)
	}

	token, err := auth.IssueToken(acct.ID, s.cfg.Secret, s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: sanitizeAccount(acct)}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "credentials", Reason: "Email and password are required"}
	}

	acct, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same error as a wrong password; account existence is not leaked.
			return nil, ErrInvalidCredentials
		}
		return nil, storeFailure(err)
	}

	now := time.Now().UTC()
	if s.cfg.Lockout.Locked(acct, now) {
		return nil, &AccountLockedError{Until: *acct.LockedUntil}
	}

	if !auth.CheckPassword(password, acct.PasswordHash) {
		if err := s.accounts.RecordFailedAttempt(ctx, acct.ID, s.cfg.Lockout.Threshold, s.cfg.Lockout.LockUntil(now)); err != nil {
			return nil, storeFailure(err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.accounts.ResetLoginState(ctx, acct.ID, now); err != nil {
		return nil, storeFailure(err)
	}
	acct.FailedAttempts = 0
	acct.LockedUntil = nil
	acct.LastLogin = &now

	token, err := auth.IssueToken(acct.ID, s.cfg.Secret, s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: sanitizeAccount(acct)}, nil
}

func (s *authService) GetProfile(ctx context.Context, accountID string) (*domain.Account, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeFailure(err)
	}
	return sanitizeAccount(acct), nil
}

func (s *authService) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return &ValidationError{Field: "password", Reason: "Current password and new password are required"}
	}

	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}

	if !auth.CheckPassword(currentPassword, acct.PasswordHash) {
		return ErrInvalidCredentials
	}
	if ok, reason := auth.ValidatePassword(newPassword, s.cfg.PasswordMinLength); !ok {
		return &ValidationError{Field: "new_password", Reason: reason}
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePasswordHash(ctx, accountID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}

// sanitizeAccount returns the public view: no hash, no lockout internals.
func sanitizeAccount(acct *domain.Account) *domain.Account {
	if acct == nil {
		return nil
	}
	return &domain.Account{
		ID:        acct.ID,
		Name:      acct.Name,
		Email:     acct.Email,
		Role:      acct.Role,
		Status:    acct.Status,
		CreatedAt: acct.CreatedAt,
		LastLogin: acct.LastLogin,
	}
}
