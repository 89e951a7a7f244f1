package models

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// QuestionBankItem is a single MCQ harvested from a question-bank site.
// Append-only; duplicates across runs are tolerated.
type QuestionBankItem struct {
	ID          string         `db:"id" json:"id"`
	SubjectCode string         `db:"subject_code" json:"subject_code" validate:"required"`
	Question    string         `db:"question" json:"question" validate:"required"`
	Options     types.JSONText `db:"options" json:"options"`
	Answer      string         `db:"answer" json:"answer"`
	Explanation string         `db:"explanation" json:"explanation"`
	Difficulty  string         `db:"difficulty" json:"difficulty"`
	Topic       string         `db:"topic" json:"topic"`
	SourceName  string         `db:"source_name" json:"source_name"`
	SourceURL   string         `db:"source_url" json:"source_url"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// OptionsJSON encodes an option-letter map ("A" -> text) for storage.
func OptionsJSON(options map[string]string) types.JSONText {
	if len(options) == 0 {
		return types.JSONText(`{}`)
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return types.JSONText(`{}`)
	}
	return types.JSONText(raw)
}
