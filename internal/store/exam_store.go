package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// ExamRepo handles persistence for exam schedules and result statistics.
type ExamRepo struct {
	db *sqlx.DB
}

// NewExamRepo creates a new repository instance.
func NewExamRepo(db *sqlx.DB) *ExamRepo {
	return &ExamRepo{db: db}
}

// InsertSchedule appends an exam schedule row.
func (r *ExamRepo) InsertSchedule(ctx context.Context, rec *models.ExamSchedule) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.ExamDate.IsZero() {
		rec.ExamDate = time.Now().UTC()
	}
	rec.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO exam_schedules (id, exam_name, subject_code, branch, semester, exam_date, source_url, created_at)
		VALUES (:id, :exam_name, :subject_code, :branch, :semester, :exam_date, :source_url, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("insert exam schedule: %w", err)
	}
	return nil
}

// InsertResultStat appends a result statistic row.
func (r *ExamRepo) InsertResultStat(ctx context.Context, rec *models.ResultStatistic) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO result_statistics (id, exam_name, branch, semester, total_students, pass_percentage, source_url, created_at)
		VALUES (:id, :exam_name, :branch, :semester, :total_students, :pass_percentage, :source_url, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("insert result statistic: %w", err)
	}
	return nil
}
