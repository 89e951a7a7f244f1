package models

import "time"

// ExamSchedule is one row of a published examination timetable.
type ExamSchedule struct {
	ID          string    `db:"id" json:"id"`
	ExamName    string    `db:"exam_name" json:"exam_name" validate:"required"`
	SubjectCode string    `db:"subject_code" json:"subject_code"`
	Branch      string    `db:"branch" json:"branch"`
	Semester    int       `db:"semester" json:"semester"`
	ExamDate    time.Time `db:"exam_date" json:"exam_date"`
	SourceURL   string    `db:"source_url" json:"source_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ResultStatistic summarizes published results for a branch and semester.
type ResultStatistic struct {
	ID             string    `db:"id" json:"id"`
	ExamName       string    `db:"exam_name" json:"exam_name" validate:"required"`
	Branch         string    `db:"branch" json:"branch"`
	Semester       int       `db:"semester" json:"semester"`
	TotalStudents  int       `db:"total_students" json:"total_students"`
	PassPercentage float64   `db:"pass_percentage" json:"pass_percentage"`
	SourceURL      string    `db:"source_url" json:"source_url"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
