package models

import "time"

// VideoResource is a lecture or tutorial video found for a subject.
type VideoResource struct {
	ID          string    `db:"id" json:"id"`
	SubjectCode string    `db:"subject_code" json:"subject_code" validate:"required"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	VideoURL    string    `db:"video_url" json:"video_url"`
	Duration    string    `db:"duration" json:"duration"`
	Platform    string    `db:"platform" json:"platform"`
	ChannelName string    `db:"channel_name" json:"channel_name"`
	ViewCount   int64     `db:"view_count" json:"view_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
