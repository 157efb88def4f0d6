package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

// UserService exposes the administrative user directory: listing accounts,
// creating records for externally managed users, and profile updates.
// Credential handling stays in AuthService.
type UserService interface {
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, name, email string, role domain.Role) (string, error)
	Update(ctx context.Context, id string, upd domain.AccountUpdate) error
	TouchLastLogin(ctx context.Context, id string) error
}

type userService struct {
	accounts repository.AccountRepository
}

func NewUserService(accounts repository.AccountRepository) UserService {
	return &userService{accounts: accounts}
}

func (s *userService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	views := make([]domain.Account, len(accounts))
	for i := range accounts {
		views[i] = *sanitizeAccount(&accounts[i])
	}
	return views, nil
}

func (s *userService) Create(ctx context.Context, name, email string, role domain.Role) (string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" {
		return "", &ValidationError{Field: "name", Reason: "Missing required field: name"}
	}
	if email == "" {
		return "", &ValidationError{Field: "email", Reason: "Missing required field: email"}
	}
	if role == "" {
		role = domain.RoleMember
	} else if !domain.ValidRole(role) {
		return "", &ValidationError{Field: "role", Reason: "Invalid role"}
	}

	acct := &domain.Account{
		Name:   name,
		Email:  email,
		Role:   role,
		Status: domain.AccountActive,
	}
	id, err := s.accounts.Create(ctx, acct)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrDuplicateEmail
		}
		return "", storeFailure(err)
	}
	return id, nil
}

func (s *userService) Update(ctx context.Context, id string, upd domain.AccountUpdate) error {
	if upd.Role != nil && !domain.ValidRole(*upd.Role) {
		return &ValidationError{Field: "role", Reason: "Invalid role"}
	}
	if err := s.accounts.UpdateProfile(ctx, id, upd); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}

func (s *userService) TouchLastLogin(ctx context.Context, id string) error {
	if err := s.accounts.TouchLastLogin(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}
