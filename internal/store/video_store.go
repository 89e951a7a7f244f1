package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// VideoRepo handles persistence for video resources.
type VideoRepo struct {
	db *sqlx.DB
}

// NewVideoRepo creates a new repository instance.
func NewVideoRepo(db *sqlx.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// Insert appends a video resource row.
func (r *VideoRepo) Insert(ctx context.Context, rec *models.VideoResource) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO video_resources (id, subject_code, title, description, video_url, duration, platform, channel_name, view_count, created_at)
		VALUES (:id, :subject_code, :title, :description, :video_url, :duration, :platform, :channel_name, :view_count, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}
