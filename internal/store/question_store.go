package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// QuestionRepo handles persistence for question-bank items.
type QuestionRepo struct {
	db *sqlx.DB
}

// NewQuestionRepo creates a new repository instance.
func NewQuestionRepo(db *sqlx.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Insert appends a question. The table is append-only; cross-run duplicates
// are tolerated.
func (r *QuestionRepo) Insert(ctx context.Context, rec *models.QuestionBankItem) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if len(rec.Options) == 0 {
		rec.Options = models.OptionsJSON(nil)
	}
	rec.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO question_bank (id, subject_code, question, options, answer, explanation, difficulty, topic, source_name, source_url, created_at)
		VALUES (:id, :subject_code, :question, :options, :answer, :explanation, :difficulty, :topic, :source_name, :source_url, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}
