package models

import "time"

// Subject represents a university subject identified by its code.
type Subject struct {
	ID        string    `db:"id" json:"id"`
	Code      string    `db:"code" json:"code" validate:"required"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Branch    string    `db:"branch" json:"branch"`
	Semester  int       `db:"semester" json:"semester"`
	Credits   int       `db:"credits" json:"credits"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
