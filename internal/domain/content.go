package domain

import "time"

// PostStatus enumerates blog post publication states.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// BlogPost is an article on the public site.
type BlogPost struct {
	ID        string
	Title     string
	Content   string
	Category  string
	Author    string
	Status    PostStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogPostUpdate carries optional fields for partial post updates.
type BlogPostUpdate struct {
	Title    *string
	Content  *string
	Category *string
	Author   *string
	Status   *PostStatus
}

// Testimonial is a client quote displayed on the site.
type Testimonial struct {
	ID         string
	ClientName string
	Company    string
	Position   string
	Text       string
	Rating     int
	Status     string
	CreatedAt  time.Time
}

// TestimonialUpdate carries optional fields for partial testimonial updates.
type TestimonialUpdate struct {
	ClientName *string
	Company    *string
	Position   *string
	Text       *string
	Rating     *int
	Status     *string
}

// Contact is an inbound message from the contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Message   string
	Status    string
	CreatedAt time.Time
}

// ContactUpdate carries optional fields for partial contact updates.
type ContactUpdate struct {
	Name    *string
	Email   *string
	Company *string
	Message *string
	Status  *string
}
