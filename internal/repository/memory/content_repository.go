package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

// BlogPostRepository is an in-memory BlogPostRepository.
type BlogPostRepository struct {
	mu    sync.RWMutex
	posts map[string]*domain.BlogPost
}

func NewBlogPostRepository() repository.BlogPostRepository {
	return &BlogPostRepository{posts: make(map[string]*domain.BlogPost)}
}

func (r *BlogPostRepository) Init(ctx context.Context) error { return nil }

func (r *BlogPostRepository) Create(ctx context.Context, post *domain.BlogPost) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	stored := *post
	r.posts[post.ID] = &stored
	return post.ID, nil
}

func (r *BlogPostRepository) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *post
	return &cp, nil
}

func (r *BlogPostRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []domain.BlogPost
	for _, post := range r.posts {
		if publishedOnly && post.Status != domain.PostStatusPublished {
			continue
		}
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *BlogPostRepository) Update(ctx context.Context, id string, upd domain.BlogPostUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	if upd.Title != nil {
		post.Title = *upd.Title
	}
	if upd.Content != nil {
		post.Content = *upd.Content
	}
	if upd.Category != nil {
		post.Category = *upd.Category
	}
	if upd.Author != nil {
		post.Author = *upd.Author
	}
	if upd.Status != nil {
		post.Status = *upd.Status
	}
	post.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *BlogPostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

// TestimonialRepository is an in-memory TestimonialRepository.
type TestimonialRepository struct {
	mu           sync.RWMutex
	testimonials map[string]*domain.Testimonial
}

func NewTestimonialRepository() repository.TestimonialRepository {
	return &TestimonialRepository{testimonials: make(map[string]*domain.Testimonial)}
}

func (r *TestimonialRepository) Init(ctx context.Context) error { return nil }

func (r *TestimonialRepository) Create(ctx context.Context, tm *domain.Testimonial) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tm.ID == "" {
		tm.ID = uuid.NewString()
	}
	tm.CreatedAt = time.Now().UTC()
	stored := *tm
	r.testimonials[tm.ID] = &stored
	return tm.ID, nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var testimonials []domain.Testimonial
	for _, tm := range r.testimonials {
		testimonials = append(testimonials, *tm)
	}
	sort.Slice(testimonials, func(i, j int) bool {
		return testimonials[i].CreatedAt.Before(testimonials[j].CreatedAt)
	})
	return testimonials, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id string, upd domain.TestimonialUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tm, ok := r.testimonials[id]
	if !ok {
		return repository.ErrNotFound
	}
	if upd.ClientName != nil {
		tm.ClientName = *upd.ClientName
	}
	if upd.Company != nil {
		tm.Company = *upd.Company
	}
	if upd.Position != nil {
		tm.Position = *upd.Position
	}
	if upd.Text != nil {
		tm.Text = *upd.Text
	}
	if upd.Rating != nil {
		tm.Rating = *upd.Rating
	}
	if upd.Status != nil {
		tm.Status = *upd.Status
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.testimonials[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.testimonials, id)
	return nil
}

// ContactRepository is an in-memory ContactRepository.
type ContactRepository struct {
	mu       sync.RWMutex
	contacts map[string]*domain.Contact
}

func NewContactRepository() repository.ContactRepository {
	return &ContactRepository{contacts: make(map[string]*domain.Contact)}
}

func (r *ContactRepository) Init(ctx context.Context) error { return nil }

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	contact.CreatedAt = time.Now().UTC()
	stored := *contact
	r.contacts[contact.ID] = &stored
	return contact.ID, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var contacts []domain.Contact
	for _, contact := range r.contacts {
		contacts = append(contacts, *contact)
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}

func (r *ContactRepository) Update(ctx context.Context, id string, upd domain.ContactUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok {
		return repository.ErrNotFound
	}
	if upd.Name != nil {
		contact.Name = *upd.Name
	}
	if upd.Email != nil {
		contact.Email = *upd.Email
	}
	if upd.Company != nil {
		contact.Company = *upd.Company
	}
	if upd.Message != nil {
		contact.Message = *upd.Message
	}
	if upd.Status != nil {
		contact.Status = *upd.Status
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}
