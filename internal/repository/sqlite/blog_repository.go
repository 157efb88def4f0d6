package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

const createBlogPostsTable = `
CREATE TABLE IF NOT EXISTS blog_posts (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	category TEXT NOT NULL,
	author TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_blog_posts_status ON blog_posts (status);
CREATE INDEX IF NOT EXISTS idx_blog_posts_created_at ON blog_posts (created_at);
`

type BlogPostRepository struct {
	db *sql.DB
}

func NewBlogPostRepository(db *sql.DB) repository.BlogPostRepository {
	return &BlogPostRepository{db: db}
}

func (r *BlogPostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBlogPostsTable); err != nil {
		return fmt.Errorf("create blog_posts table: %w", err)
	}
	return nil
}

func (r *BlogPostRepository) Create(ctx context.Context, post *domain.BlogPost) (string, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO blog_posts (id, title, content, category, author, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID,
		post.Title,
		post.Content,
		post.Category,
		post.Author,
		string(post.Status),
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert blog post: %w", err)
	}
	return post.ID, nil
}

func (r *BlogPostRepository) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	row := r.db.QueryRowContext(ctx, selectBlogPost+`WHERE id = ?`, id)
	return scanBlogPost(row)
}

func (r *BlogPostRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	query := selectBlogPost
	var args []any
	if publishedOnly {
		query += `WHERE status = ? `
		args = append(args, string(domain.PostStatusPublished))
	}
	query += `ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *BlogPostRepository) Update(ctx context.Context, id string, upd domain.BlogPostUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *upd.Content)
	}
	if upd.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *upd.Category)
	}
	if upd.Author != nil {
		sets = append(sets, "author = ?")
		args = append(args, *upd.Author)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*upd.Status))
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE blog_posts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return requireModified(res)
}

func (r *BlogPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return requireModified(res)
}

const selectBlogPost = `
SELECT id, title, content, category, author, status, created_at, updated_at
FROM blog_posts
`

func scanBlogPost(row interface {
	Scan(dest ...any) error
}) (*domain.BlogPost, error) {
	var (
		post   domain.BlogPost
		status string
	)
	if err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Category,
		&post.Author,
		&status,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan blog post: %w", err)
	}
	post.Status = domain.PostStatus(status)
	return &post, nil
}
