package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS subjects (
    id          TEXT PRIMARY KEY,
    code        TEXT NOT NULL UNIQUE,
    name        TEXT NOT NULL,
    branch      TEXT NOT NULL DEFAULT '',
    semester    INTEGER NOT NULL DEFAULT 0,
    credits     INTEGER NOT NULL DEFAULT 0,
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS syllabus_content (
    id           TEXT PRIMARY KEY,
    subject_code TEXT NOT NULL,
    unit         INTEGER NOT NULL DEFAULT 1,
    unit_title   TEXT NOT NULL DEFAULT '',
    topic        TEXT NOT NULL,
    body         TEXT NOT NULL DEFAULT '',
    source_url   TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL,
    updated_at   TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_syllabus_subject_unit_topic
    ON syllabus_content (subject_code, unit, topic);

CREATE TABLE IF NOT EXISTS note_records (
    id           TEXT PRIMARY KEY,
    subject_code TEXT NOT NULL,
    unit         INTEGER NOT NULL DEFAULT 1,
    title        TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    file_url     TEXT NOT NULL,
    source_url   TEXT NOT NULL DEFAULT '',
    source_name  TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_notes_subject_file
    ON note_records (subject_code, file_url);

CREATE TABLE IF NOT EXISTS question_bank (
    id           TEXT PRIMARY KEY,
    subject_code TEXT NOT NULL,
    question     TEXT NOT NULL,
    options      JSONB NOT NULL DEFAULT '{}',
    answer       TEXT NOT NULL DEFAULT '',
    explanation  TEXT NOT NULL DEFAULT '',
    difficulty   TEXT NOT NULL DEFAULT '',
    topic        TEXT NOT NULL DEFAULT '',
    source_name  TEXT NOT NULL DEFAULT '',
    source_url   TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS video_resources (
    id           TEXT PRIMARY KEY,
    subject_code TEXT NOT NULL,
    title        TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    video_url    TEXT NOT NULL DEFAULT '',
    duration     TEXT NOT NULL DEFAULT '',
    platform     TEXT NOT NULL DEFAULT '',
    channel_name TEXT NOT NULL DEFAULT '',
    view_count   BIGINT NOT NULL DEFAULT 0,
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS circulars (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    content      TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    published_at TIMESTAMPTZ NOT NULL,
    external_url TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS exam_schedules (
    id           TEXT PRIMARY KEY,
    exam_name    TEXT NOT NULL,
    subject_code TEXT NOT NULL DEFAULT '',
    branch       TEXT NOT NULL DEFAULT '',
    semester     INTEGER NOT NULL DEFAULT 0,
    exam_date    TIMESTAMPTZ NOT NULL,
    source_url   TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS result_statistics (
    id              TEXT PRIMARY KEY,
    exam_name       TEXT NOT NULL,
    branch          TEXT NOT NULL DEFAULT '',
    semester        INTEGER NOT NULL DEFAULT 0,
    total_students  INTEGER NOT NULL DEFAULT 0,
    pass_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
    source_url      TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the content tables when they do not exist yet, so a
// fresh database works without external migration tooling. Safe to run on
// every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
