package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

// ContactService coordinates contact message operations.
type ContactService interface {
	List(ctx context.Context) ([]domain.Contact, error)
	Create(ctx context.Context, input ContactInput) (string, error)
	Update(ctx context.Context, id string, upd domain.ContactUpdate) error
	Delete(ctx context.Context, id string) error
}

// ContactInput is the raw input from the contact form.
type ContactInput struct {
	Name    string
	Email   string
	Company string
	Message string
}

type contactService struct {
	contacts repository.ContactRepository
}

func NewContactService(contacts repository.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	return contacts, nil
}

func (s *contactService) Create(ctx context.Context, input ContactInput) (string, error) {
	required := []struct {
		name  string
		empty bool
	}{
		{"name", strings.TrimSpace(input.Name) == ""},
		{"email", strings.TrimSpace(input.Email) == ""},
		{"message", strings.TrimSpace(input.Message) == ""},
	}
	for _, f := range required {
		if f.empty {
			return "", &ValidationError{Field: f.name, Reason: fmt.Sprintf("Missing required field: %s", f.name)}
		}
	}

	contact := &domain.Contact{
		Name:    sanitizeText(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Company: sanitizeText(input.Company),
		Message: sanitizeText(input.Message),
		Status:  "new",
	}
	id, err := s.contacts.Create(ctx, contact)
	if err != nil {
		return "", storeFailure(err)
	}
	return id, nil
}

func (s *contactService) Update(ctx context.Context, id string, upd domain.ContactUpdate) error {
	if err := s.contacts.Update(ctx, id, upd); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}
