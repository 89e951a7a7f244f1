package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

func newStoreMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSyllabusRepoUpsertInsertsWhenMissing(t *testing.T) {
	db, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewSyllabusRepo(db)

	mock.ExpectQuery("SELECT id FROM syllabus_content").
		WithArgs("3130702", 2, "AVL Trees").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO syllabus_content").
		WithArgs(sqlmock.AnyArg(), "3130702", 2, "Trees", "AVL Trees", "rotations and balancing", "https://example.com/unit/2", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.Upsert(context.Background(), &models.SyllabusContent{
		SubjectCode: "3130702",
		Unit:        2,
		UnitTitle:   "Trees",
		Topic:       "AVL Trees",
		Body:        "rotations and balancing",
		SourceURL:   "https://example.com/unit/2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyllabusRepoUpsertReplacesBodyOnSecondWrite(t *testing.T) {
	db, mock, cleanup := newStoreMock(t)
	defer cleanup()
	repo := NewSyllabusRepo(db)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("syl-1")
	mock.ExpectQuery("SELECT id FROM syllabus_content").
		WithArgs("3130702", 2, "AVL Trees").
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE syllabus_content").
		WithArgs("Trees", "updated body", "https://example.com/unit/2", sqlmock.AnyArg(), "syl-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Upsert(context.Background(), &models.SyllabusContent{
		SubjectCode: "3130702",
		Unit:        2,
		UnitTitle:   "Trees",
		Topic:       "AVL Trees",
		Body:        "updated body",
		SourceURL:   "https://example.com/unit/2",
	})
	require.NoError(t, err)
	assert.Equal(t, "syl-1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
