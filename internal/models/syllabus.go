package models

import "time"

// SyllabusContent is one topic of one unit of a subject's syllabus.
// Rows are keyed by (subject code, unit, topic) and upserted on re-crawl.
type SyllabusContent struct {
	ID          string    `db:"id" json:"id"`
	SubjectCode string    `db:"subject_code" json:"subject_code" validate:"required"`
	Unit        int       `db:"unit" json:"unit"`
	UnitTitle   string    `db:"unit_title" json:"unit_title"`
	Topic       string    `db:"topic" json:"topic" validate:"required"`
	Body        string    `db:"body" json:"body"`
	SourceURL   string    `db:"source_url" json:"source_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
