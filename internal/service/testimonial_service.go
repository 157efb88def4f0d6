package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

// TestimonialService coordinates testimonial operations.
type TestimonialService interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
	Create(ctx context.Context, input TestimonialInput) (string, error)
	Update(ctx context.Context, id string, upd domain.TestimonialUpdate) error
	Delete(ctx context.Context, id string) error
}

// TestimonialInput is the raw input for a new testimonial. Rating is a
// pointer so a missing field is distinguishable from zero.
type TestimonialInput struct {
	ClientName string
	Company    string
	Position   string
	Text       string
	Rating     *int
	Status     string
}

type testimonialService struct {
	testimonials repository.TestimonialRepository
}

func NewTestimonialService(testimonials repository.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonials: testimonials}
}

func (s *testimonialService) List(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	return testimonials, nil
}

func (s *testimonialService) Create(ctx context.Context, input TestimonialInput) (string, error) {
	required := []struct {
		name  string
		empty bool
	}{
		{"client_name", strings.TrimSpace(input.ClientName) == ""},
		{"company", strings.TrimSpace(input.Company) == ""},
		{"position", strings.TrimSpace(input.Position) == ""},
		{"text", strings.TrimSpace(input.Text) == ""},
		{"rating", input.Rating == nil},
	}
	for _, f := range required {
		if f.empty {
			return "", &ValidationError{Field: f.name, Reason: fmt.Sprintf("Missing required field: %s", f.name)}
		}
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = "active"
	}

	tm := &domain.Testimonial{
		ClientName: sanitizeText(input.ClientName),
		Company:    sanitizeText(input.Company),
		Position:   sanitizeText(input.Position),
		Text:       sanitizeText(input.Text),
		Rating:     *input.Rating,
		Status:     status,
	}
	id, err := s.testimonials.Create(ctx, tm)
	if err != nil {
		return "", storeFailure(err)
	}
	return id, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, upd domain.TestimonialUpdate) error {
	if err := s.testimonials.Update(ctx, id, upd); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	if err := s.testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}
