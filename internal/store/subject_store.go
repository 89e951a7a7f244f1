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

// SubjectRepo handles persistence for subjects.
type SubjectRepo struct {
	db *sqlx.DB
}

// NewSubjectRepo creates a new repository instance.
func NewSubjectRepo(db *sqlx.DB) *SubjectRepo {
	return &SubjectRepo{db: db}
}

// List returns all known subjects ordered by code.
func (r *SubjectRepo) List(ctx context.Context) ([]models.Subject, error) {
	const query = `SELECT id, code, name, branch, semester, credits, created_at, updated_at FROM subjects ORDER BY code`
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// FindByCode returns a subject by its code, or nil when unknown.
func (r *SubjectRepo) FindByCode(ctx context.Context, code string) (*models.Subject, error) {
	const query = `SELECT id, code, name, branch, semester, credits, created_at, updated_at FROM subjects WHERE code = $1`
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}
	return &subject, nil
}

// Upsert inserts the subject on first reference and refreshes its name
// otherwise. Returns the stored row id.
func (r *SubjectRepo) Upsert(ctx context.Context, subject *models.Subject) (string, error) {
	existing, err := r.FindByCode(ctx, subject.Code)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if existing != nil {
		const update = `UPDATE subjects SET name = $1, branch = $2, semester = $3, credits = $4, updated_at = $5 WHERE code = $6`
		if _, err := r.db.ExecContext(ctx, update, subject.Name, subject.Branch, subject.Semester, subject.Credits, now, subject.Code); err != nil {
			return "", fmt.Errorf("update subject: %w", err)
		}
		return existing.ID, nil
	}

	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	subject.CreatedAt = now
	subject.UpdatedAt = now

	const insert = `INSERT INTO subjects (id, code, name, branch, semester, credits, created_at, updated_at) VALUES (:id, :code, :name, :branch, :semester, :credits, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, insert, subject); err != nil {
		return "", fmt.Errorf("create subject: %w", err)
	}
	return subject.ID, nil
}
