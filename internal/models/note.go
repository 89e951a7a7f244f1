package models

import "time"

// NoteRecord points at a downloadable resource (PDF, document) for a subject.
// (subject_code, file_url) is unique; duplicate submissions are skipped.
type NoteRecord struct {
	ID          string    `db:"id" json:"id"`
	SubjectCode string    `db:"subject_code" json:"subject_code" validate:"required"`
	Unit        int       `db:"unit" json:"unit"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	FileURL     string    `db:"file_url" json:"file_url" validate:"required"`
	SourceURL   string    `db:"source_url" json:"source_url"`
	SourceName  string    `db:"source_name" json:"source_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
