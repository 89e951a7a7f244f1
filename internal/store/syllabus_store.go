package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// SyllabusRepo handles persistence for syllabus content.
type SyllabusRepo struct {
	db *sqlx.DB
}

// NewSyllabusRepo creates a new repository instance.
func NewSyllabusRepo(db *sqlx.DB) *SyllabusRepo {
	return &SyllabusRepo{db: db}
}

// Upsert looks up the row by (subject_code, unit, topic). When present the
// body, unit title and source are refreshed; otherwise a new row is inserted.
// The explicit exists-then-update keeps dedup a documented contract instead
// of a caught constraint error. Returns the stored row id.
func (r *SyllabusRepo) Upsert(ctx context.Context, rec *models.SyllabusContent) (string, error) {
	const lookup = `SELECT id FROM syllabus_content WHERE subject_code = $1 AND unit = $2 AND topic = $3`

	now := time.Now().UTC()

	var id string
	err := r.db.GetContext(ctx, &id, lookup, rec.SubjectCode, rec.Unit, rec.Topic)
	switch {
	case err == nil:
		const update = `UPDATE syllabus_content SET unit_title = $1, body = $2, source_url = $3, updated_at = $4 WHERE id = $5`
		if _, err := r.db.ExecContext(ctx, update, rec.UnitTitle, rec.Body, rec.SourceURL, now, id); err != nil {
			return "", fmt.Errorf("update syllabus content: %w", err)
		}
		return id, nil
	case err == sql.ErrNoRows:
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		const insert = `INSERT INTO syllabus_content (id, subject_code, unit, unit_title, topic, body, source_url, created_at, updated_at) VALUES (:id, :subject_code, :unit, :unit_title, :topic, :body, :source_url, :created_at, :updated_at)`
		if _, err := r.db.NamedExecContext(ctx, insert, rec); err != nil {
			return "", fmt.Errorf("insert syllabus content: %w", err)
		}
		return rec.ID, nil
	default:
		return "", fmt.Errorf("lookup syllabus content: %w", err)
	}
}
