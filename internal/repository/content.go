package repository

import (
	"context"

	"consulting-api/internal/domain"
)

// BlogPostRepository defines persistence operations for blog posts.
type BlogPostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.BlogPost) (string, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	// List returns posts newest first. With publishedOnly set, drafts are
	// filtered out.
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	Update(ctx context.Context, id string, upd domain.BlogPostUpdate) error
	Delete(ctx context.Context, id string) error
}

// TestimonialRepository defines persistence operations for testimonials.
type TestimonialRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, tm *domain.Testimonial) (string, error)
	List(ctx context.Context) ([]domain.Testimonial, error)
	Update(ctx context.Context, id string, upd domain.TestimonialUpdate) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, contact *domain.Contact) (string, error)
	// List returns contacts newest first.
	List(ctx context.Context) ([]domain.Contact, error)
	Update(ctx context.Context, id string, upd domain.ContactUpdate) error
	Delete(ctx context.Context, id string) error
}
