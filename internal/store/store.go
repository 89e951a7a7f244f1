package store

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// Recorder counts successful writes per entity. The metrics collector
// implements it; tests use the no-op default.
type Recorder interface {
	RecordWrite(entity string)
}

type nopRecorder struct{}

func (nopRecorder) RecordWrite(string) {}

// Store is the single persistence choke point for the whole pipeline. Write
// methods validate, log and absorb storage errors instead of returning them:
// a single malformed record must never halt an hours-long crawl. Adapters
// check the boolean/identity result only when they need to know whether the
// row landed.
type Store struct {
	subjects  *SubjectRepo
	syllabus  *SyllabusRepo
	notes     *NoteRepo
	questions *QuestionRepo
	videos    *VideoRepo
	circulars *CircularRepo
	exams     *ExamRepo

	validate *validator.Validate
	recorder Recorder
	logger   *zap.Logger
}

// New wires a Store over the given database handle.
func New(db *sqlx.DB, recorder Recorder, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Store{
		subjects:  NewSubjectRepo(db),
		syllabus:  NewSyllabusRepo(db),
		notes:     NewNoteRepo(db),
		questions: NewQuestionRepo(db),
		videos:    NewVideoRepo(db),
		circulars: NewCircularRepo(db),
		exams:     NewExamRepo(db),
		validate:  validator.New(),
		recorder:  recorder,
		logger:    logger,
	}
}

// ListSubjects returns all known subjects for the orchestrator to iterate.
func (s *Store) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.subjects.List(ctx)
}

// UpsertSubject registers a subject on first reference from an adapter.
func (s *Store) UpsertSubject(ctx context.Context, rec models.Subject) string {
	if !s.valid("subject", &rec) {
		return ""
	}
	id, err := s.subjects.Upsert(ctx, &rec)
	if err != nil {
		s.swallow("subject", rec.Code, err)
		return ""
	}
	s.recorder.RecordWrite("subject")
	return id
}

// UpsertSyllabus updates the (subject, unit, topic) row or inserts it.
// Returns the stored id, or "" when the write was dropped.
func (s *Store) UpsertSyllabus(ctx context.Context, rec models.SyllabusContent) string {
	if !s.valid("syllabus", &rec) {
		return ""
	}
	id, err := s.syllabus.Upsert(ctx, &rec)
	if err != nil {
		s.swallow("syllabus", rec.SubjectCode, err)
		return ""
	}
	s.recorder.RecordWrite("syllabus")
	return id
}

// InsertNote stores a note, treating an existing (subject, file URL) pair as
// success. Returns false only when the write genuinely failed.
func (s *Store) InsertNote(ctx context.Context, rec models.NoteRecord) bool {
	if !s.valid("note", &rec) {
		return false
	}
	err := s.notes.Insert(ctx, &rec)
	if errors.Is(err, ErrDuplicate) {
		s.logger.Debug("note already known",
			zap.String("subject", rec.SubjectCode),
			zap.String("file_url", rec.FileURL))
		return true
	}
	if err != nil {
		s.swallow("note", rec.SubjectCode, err)
		return false
	}
	s.recorder.RecordWrite("note")
	return true
}

// InsertQuestion appends a question-bank item.
func (s *Store) InsertQuestion(ctx context.Context, rec models.QuestionBankItem) bool {
	if !s.valid("question", &rec) {
		return false
	}
	if err := s.questions.Insert(ctx, &rec); err != nil {
		s.swallow("question", rec.SubjectCode, err)
		return false
	}
	s.recorder.RecordWrite("question")
	return true
}

// InsertVideo appends a video resource.
func (s *Store) InsertVideo(ctx context.Context, rec models.VideoResource) bool {
	if !s.valid("video", &rec) {
		return false
	}
	if err := s.videos.Insert(ctx, &rec); err != nil {
		s.swallow("video", rec.SubjectCode, err)
		return false
	}
	s.recorder.RecordWrite("video")
	return true
}

// InsertCircular appends a circular or community discussion.
func (s *Store) InsertCircular(ctx context.Context, rec models.Circular) bool {
	if !s.valid("circular", &rec) {
		return false
	}
	if err := s.circulars.Insert(ctx, &rec); err != nil {
		s.swallow("circular", rec.Title, err)
		return false
	}
	s.recorder.RecordWrite("circular")
	return true
}

// InsertExamSchedule appends an exam schedule row.
func (s *Store) InsertExamSchedule(ctx context.Context, rec models.ExamSchedule) bool {
	if !s.valid("exam_schedule", &rec) {
		return false
	}
	if err := s.exams.InsertSchedule(ctx, &rec); err != nil {
		s.swallow("exam_schedule", rec.ExamName, err)
		return false
	}
	s.recorder.RecordWrite("exam_schedule")
	return true
}

// InsertResultStat appends a result statistic row.
func (s *Store) InsertResultStat(ctx context.Context, rec models.ResultStatistic) bool {
	if !s.valid("result_stat", &rec) {
		return false
	}
	if err := s.exams.InsertResultStat(ctx, &rec); err != nil {
		s.swallow("result_stat", rec.ExamName, err)
		return false
	}
	s.recorder.RecordWrite("result_stat")
	return true
}

func (s *Store) valid(entity string, rec interface{}) bool {
	if err := s.validate.Struct(rec); err != nil {
		s.logger.Warn("dropping invalid record",
			zap.String("entity", entity),
			zap.Error(err))
		return false
	}
	return true
}

func (s *Store) swallow(entity, key string, err error) {
	s.logger.Warn("write failed, continuing crawl",
		zap.String("entity", entity),
		zap.String("key", key),
		zap.Error(err))
}
