package store

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

type countingRecorder struct {
	writes map[string]int
}

func (c *countingRecorder) RecordWrite(entity string) {
	if c.writes == nil {
		c.writes = map[string]int{}
	}
	c.writes[entity]++
}

func TestStoreInsertNoteTreatsDuplicateAsSuccess(t *testing.T) {
	db, mock, cleanup := newStoreMock(t)
	defer cleanup()
	rec := &countingRecorder{}
	s := New(db, rec, zap.NewNop())

	mock.ExpectExec("INSERT INTO note_records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok := s.InsertNote(context.Background(), models.NoteRecord{
		SubjectCode: "3130702",
		FileURL:     "https://example.com/dup.pdf",
	})
	assert.True(t, ok)
	// A skipped duplicate is not a new write.
	assert.Zero(t, rec.writes["note"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSwallowsStorageErrors(t *testing.T) {
	db, mock, cleanup := newStoreMock(t)
	defer cleanup()
	s := New(db, nil, zap.NewNop())

	mock.ExpectExec("INSERT INTO question_bank").
		WillReturnError(errors.New("connection reset"))

	ok := s.InsertQuestion(context.Background(), models.QuestionBankItem{
		SubjectCode: "3130702",
		Question:    "What is a B-tree?",
	})
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRejectsRecordsWithoutSubjectCode(t *testing.T) {
	db, _, cleanup := newStoreMock(t)
	defer cleanup()
	s := New(db, nil, zap.NewNop())

	// No expectations set: an invalid record must never reach the database.
	assert.False(t, s.InsertVideo(context.Background(), models.VideoResource{Title: "orphan"}))
	assert.Empty(t, s.UpsertSyllabus(context.Background(), models.SyllabusContent{Topic: "orphan"}))
}

func TestStoreRecordsWriteCounts(t *testing.T) {
	db, mock, cleanup := newStoreMock(t)
	defer cleanup()
	rec := &countingRecorder{}
	s := New(db, rec, zap.NewNop())

	mock.ExpectExec("INSERT INTO circulars").
		WillReturnResult(sqlmock.NewResult(1, 1))

	ok := s.InsertCircular(context.Background(), models.Circular{
		Title:    "Exam form deadline extended",
		Category: "Academic",
	})
	assert.True(t, ok)
	assert.Equal(t, 1, rec.writes["circular"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
