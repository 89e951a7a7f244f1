package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// CircularRepo handles persistence for circulars and community discussions.
type CircularRepo struct {
	db *sqlx.DB
}

// NewCircularRepo creates a new repository instance.
func NewCircularRepo(db *sqlx.DB) *CircularRepo {
	return &CircularRepo{db: db}
}

// Insert appends a circular row.
func (r *CircularRepo) Insert(ctx context.Context, rec *models.Circular) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.PublishedAt.IsZero() {
		rec.PublishedAt = time.Now().UTC()
	}
	rec.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO circulars (id, title, content, category, published_at, external_url, created_at)
		VALUES (:id, :title, :content, :category, :published_at, :external_url, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("insert circular: %w", err)
	}
	return nil
}
