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

const createTestimonialsTable = `
CREATE TABLE IF NOT EXISTS testimonials (
	id TEXT PRIMARY KEY,
	client_name TEXT NOT NULL,
	company TEXT NOT NULL,
	position TEXT NOT NULL,
	text TEXT NOT NULL,
	rating INTEGER NOT NULL,
	status TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_testimonials_status ON testimonials (status);
`

type TestimonialRepository struct {
	db *sql.DB
}

func NewTestimonialRepository(db *sql.DB) repository.TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTestimonialsTable); err != nil {
		return fmt.Errorf("create testimonials table: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Create(ctx context.Context, tm *domain.Testimonial) (string, error) {
	if tm.ID == "" {
		tm.ID = uuid.NewString()
	}
	tm.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO testimonials (id, client_name, company, position, text, rating, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tm.ID,
		tm.ClientName,
		tm.Company,
		tm.Position,
		tm.Text,
		tm.Rating,
		tm.Status,
		tm.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert testimonial: %w", err)
	}
	return tm.ID, nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, client_name, company, position, text, rating, status, created_at
FROM testimonials
ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var tm domain.Testimonial
		if err := rows.Scan(
			&tm.ID,
			&tm.ClientName,
			&tm.Company,
			&tm.Position,
			&tm.Text,
			&tm.Rating,
			&tm.Status,
			&tm.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, tm)
	}
	return testimonials, rows.Err()
}

func (r *TestimonialRepository) Update(ctx context.Context, id string, upd domain.TestimonialUpdate) error {
	var sets []string
	var args []any
	if upd.ClientName != nil {
		sets = append(sets, "client_name = ?")
		args = append(args, *upd.ClientName)
	}
	if upd.Company != nil {
		sets = append(sets, "company = ?")
		args = append(args, *upd.Company)
	}
	if upd.Position != nil {
		sets = append(sets, "position = ?")
		args = append(args, *upd.Position)
	}
	if upd.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *upd.Text)
	}
	if upd.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *upd.Rating)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *upd.Status)
	}
	if len(sets) == 0 {
		return errors.New("no fields to update")
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE testimonials SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return requireModified(res)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return requireModified(res)
}
