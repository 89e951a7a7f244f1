package models

import "time"

// CategoryCommunityDiscussion marks forum posts stored in the circulars table.
const CategoryCommunityDiscussion = "Community Discussion"

// Circular is a university notice or a community discussion post. Circulars
// are subject-agnostic and append-only.
type Circular struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title" validate:"required"`
	Content     string    `db:"content" json:"content"`
	Category    string    `db:"category" json:"category"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	ExternalURL string    `db:"external_url" json:"external_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
