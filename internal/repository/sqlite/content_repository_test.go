package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBlogPostRepository_ListFiltersDrafts(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.BlogPost{
		Title: "Published", Content: "c", Category: "Tutorial", Author: "a",
		Status: domain.PostStatusPublished,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.BlogPost{
		Title: "Draft", Content: "c", Category: "Artigo", Author: "a",
		Status: domain.PostStatusDraft,
	})
	require.NoError(t, err)

	published, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Published", published[0].Title)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogPostRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	id, err := repo.Create(ctx, &domain.BlogPost{
		Title: "Original", Content: "c", Category: "Tutorial", Author: "a",
		Status: domain.PostStatusDraft,
	})
	require.NoError(t, err)

	title := "Renamed"
	require.NoError(t, repo.Update(ctx, id, domain.BlogPostUpdate{Title: &title}))

	post, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", post.Title)
	assert.True(t, post.UpdatedAt.After(post.CreatedAt) || post.UpdatedAt.Equal(post.CreatedAt))

	assert.ErrorIs(t, repo.Update(ctx, "missing", domain.BlogPostUpdate{Title: &title}), repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactRepository_Roundtrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.Contact{
		Name: "Carlos", Email: "carlos@empresa.com", Message: "hi", Status: "new",
	})
	require.NoError(t, err)

	id2, err := repo.Create(ctx, &domain.Contact{
		Name: "Ana", Email: "ana@consultoria.com", Message: "hello", Status: "new",
	})
	require.NoError(t, err)

	status := "responded"
	require.NoError(t, repo.Update(ctx, id2, domain.ContactUpdate{Status: &status}))

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	require.NoError(t, repo.Delete(ctx, id2))
	assert.ErrorIs(t, repo.Delete(ctx, id2), repository.ErrNotFound)
}

func TestTestimonialRepository_Roundtrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewTestimonialRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	id, err := repo.Create(ctx, &domain.Testimonial{
		ClientName: "João", Company: "TechCorp", Position: "CEO",
		Text: "Great.", Rating: 5, Status: "active",
	})
	require.NoError(t, err)

	rating := 4
	require.NoError(t, repo.Update(ctx, id, domain.TestimonialUpdate{Rating: &rating}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Rating)
}
