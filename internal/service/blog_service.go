package service

import (
	"context"
	"errors"
	"strings"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

var blogCategories = map[string]bool{
	"Tutorial":       true,
	"Artigo":         true,
	"Estudo de Caso": true,
}

// BlogService coordinates blog post operations.
type BlogService interface {
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	ListAll(ctx context.Context) ([]domain.BlogPost, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	Create(ctx context.Context, input BlogPostInput) (string, error)
	Update(ctx context.Context, id string, upd domain.BlogPostUpdate) error
	Delete(ctx context.Context, id string) error
}

// BlogPostInput is the raw, unsanitized input for a new post.
type BlogPostInput struct {
	Title    string
	Content  string
	Category string
	Author   string
	Status   string
}

type blogService struct {
	posts repository.BlogPostRepository
}

func NewBlogService(posts repository.BlogPostRepository) BlogService {
	return &blogService{posts: posts}
}

func (s *blogService) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := s.posts.List(ctx, true)
	if err != nil {
		return nil, storeFailure(err)
	}
	return posts, nil
}

func (s *blogService) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := s.posts.List(ctx, false)
	if err != nil {
		return nil, storeFailure(err)
	}
	return posts, nil
}

func (s *blogService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeFailure(err)
	}
	return post, nil
}

func (s *blogService) Create(ctx context.Context, input BlogPostInput) (string, error) {
	if errs := validateBlogPost(input); len(errs) > 0 {
		return "", &ValidationError{Field: "post", Reason: strings.Join(errs, "; ")}
	}

	status := domain.PostStatus(sanitizeText(input.Status))
	if status == "" {
		status = domain.PostStatusDraft
	}

	post := &domain.BlogPost{
		Title:    sanitizeText(input.Title),
		Content:  sanitizeText(input.Content),
		Category: sanitizeText(input.Category),
		Author:   sanitizeText(input.Author),
		Status:   status,
	}
	id, err := s.posts.Create(ctx, post)
	if err != nil {
		return "", storeFailure(err)
	}
	return id, nil
}

func (s *blogService) Update(ctx context.Context, id string, upd domain.BlogPostUpdate) error {
	if upd.Title != nil {
		v := sanitizeText(*upd.Title)
		upd.Title = &v
	}
	if upd.Content != nil {
		v := sanitizeText(*upd.Content)
		upd.Content = &v
	}
	if upd.Category != nil {
		v := sanitizeText(*upd.Category)
		upd.Category = &v
	}
	if upd.Author != nil {
		v := sanitizeText(*upd.Author)
		upd.Author = &v
	}

	if err := s.posts.Update(ctx, id, upd); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return storeFailure(err)
	}
	return nil
}

func validateBlogPost(input BlogPostInput) []string {
	var errs []string
	if len(strings.TrimSpace(input.Title)) < 3 {
		errs = append(errs, "Title must be at least 3 characters long")
	}
	if len(strings.TrimSpace(input.Content)) < 10 {
		errs = append(errs, "Content must be at least 10 characters long")
	}
	if !blogCategories[input.Category] {
		errs = append(errs, "Category must be one of: Tutorial, Artigo, Estudo de Caso")
	}
	if len(strings.TrimSpace(input.Author)) < 2 {
		errs = append(errs, "Author must be at least 2 characters long")
	}
	return errs
}
