package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// ErrDuplicate reports that an identical row already exists; callers treat
// this outcome as success.
var ErrDuplicate = errors.New("record already exists")

const pqUniqueViolation = pq.ErrorCode("23505")

// NoteRepo handles persistence for note records.
type NoteRepo struct {
	db *sqlx.DB
}

// NewNoteRepo creates a new repository instance.
func NewNoteRepo(db *sqlx.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Insert stores the note unless a row with the same (subject_code, file_url)
// already exists, in which case ErrDuplicate is returned. The conditional
// insert makes the pipeline's only dedup guarantee explicit.
func (r *NoteRepo) Insert(ctx context.Context, rec *models.NoteRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO note_records (id, subject_code, unit, title, description, file_url, source_url, source_name, created_at)
		VALUES (:id, :subject_code, :unit, :title, :description, :file_url, :source_url, :source_name, :created_at)
		ON CONFLICT (subject_code, file_url) DO NOTHING`

	res, err := r.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		// Databases bootstrapped before the unique index existed surface the
		// conflict as a constraint error instead.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("insert note record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert note record: %w", err)
	}
	if affected == 0 {
		return ErrDuplicate
	}
	return nil
}
