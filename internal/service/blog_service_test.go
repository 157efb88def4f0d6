package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository/memory"
)

func TestBlogService_CreateAndList(t *testing.T) {
	t.Parallel()

	svc := NewBlogService(memory.NewBlogPostRepository())
	ctx := context.Background()

	id, err := svc.Create(ctx, BlogPostInput{
		Title:    "Implementing assistants",
		Content:  "Long enough content for the validator.",
		Category: "Tutorial",
		Author:   "Ana",
		Status:   "published",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = svc.Create(ctx, BlogPostInput{
		Title:    "Draft piece about ROI",
		Content:  "Also long enough content here.",
		Category: "Artigo",
		Author:   "Carlos",
	})
	require.NoError(t, err)

	published, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 1)
	assert.Equal(t, domain.PostStatusPublished, published[0].Status)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := NewBlogService(memory.NewBlogPostRepository())

	var ve *ValidationError
	_, err := svc.Create(context.Background(), BlogPostInput{
		Title:    "ab",
		Content:  "short",
		Category: "Nonsense",
		Author:   "x",
	})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "Title must be at least 3 characters long")
	assert.Contains(t, ve.Reason, "Content must be at least 10 characters long")
	assert.Contains(t, ve.Reason, "Category must be one of: Tutorial, Artigo, Estudo de Caso")
	assert.Contains(t, ve.Reason, "Author must be at least 2 characters long")
}

func TestBlogService_SanitizesInput(t *testing.T) {
	t.Parallel()

	svc := NewBlogService(memory.NewBlogPostRepository())
	ctx := context.Background()

	id, err := svc.Create(ctx, BlogPostInput{
		Title:    `<script>alert("x")</script> title`,
		Content:  "Content that is long enough.",
		Category: "Tutorial",
		Author:   "Ana",
	})
	require.NoError(t, err)

	post, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.NotContains(t, post.Title, "<script>")
	assert.Equal(t, domain.PostStatusDraft, post.Status)
}

func TestBlogService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	svc := NewBlogService(memory.NewBlogPostRepository())
	ctx := context.Background()

	id, err := svc.Create(ctx, BlogPostInput{
		Title:    "Original title",
		Content:  "Content that is long enough.",
		Category: "Tutorial",
		Author:   "Ana",
	})
	require.NoError(t, err)

	newStatus := domain.PostStatusPublished
	require.NoError(t, svc.Update(ctx, id, domain.BlogPostUpdate{Status: &newStatus}))

	post, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatusPublished, post.Status)

	assert.ErrorIs(t, svc.Update(ctx, "missing", domain.BlogPostUpdate{Status: &newStatus}), ErrNotFound)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
}

func TestTestimonialService_RequiredFields(t *testing.T) {
	t.Parallel()

	svc := NewTestimonialService(memory.NewTestimonialRepository())
	ctx := context.Background()

	rating := 5
	_, err := svc.Create(ctx, TestimonialInput{
		ClientName: "João",
		Company:    "TechCorp",
		Position:   "CEO",
		Text:       "Great work.",
		Rating:     &rating,
	})
	require.NoError(t, err)

	var ve *ValidationError
	_, err = svc.Create(ctx, TestimonialInput{
		ClientName: "João",
		Company:    "TechCorp",
		Position:   "CEO",
		Text:       "Great work.",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "rating", ve.Field)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "active", list[0].Status)
}

func TestContactService_CreateAndUpdate(t *testing.T) {
	t.Parallel()

	svc := NewContactService(memory.NewContactRepository())
	ctx := context.Background()

	id, err := svc.Create(ctx, ContactInput{
		Name:    "Carlos",
		Email:   "carlos@empresa.com",
		Message: "Interested in AI projects.",
	})
	require.NoError(t, err)

	var ve *ValidationError
	_, err = svc.Create(ctx, ContactInput{Name: "Carlos", Email: "carlos@empresa.com"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "message", ve.Field)

	responded := "responded"
	require.NoError(t, svc.Update(ctx, id, domain.ContactUpdate{Status: &responded}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "responded", list[0].Status)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
}
