package studyguide

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

// NoteWriter records the generated guide so it shows up alongside downloaded
// notes.
type NoteWriter interface {
	InsertNote(ctx context.Context, rec models.NoteRecord) bool
}

// GuideStorage persists rendered PDF bytes and returns the stored path.
type GuideStorage interface {
	Save(filename string, data []byte) (string, error)
}

// Pipeline turns accumulated source text into a stored study-guide PDF:
// summarize (or fall back to the raw text), render, save, record.
type Pipeline struct {
	summarizer *Summarizer
	storage    GuideStorage
	store      NoteWriter
	logger     *zap.Logger
}

// NewPipeline wires the guide generation stages together.
func NewPipeline(summarizer *Summarizer, storage GuideStorage, store NoteWriter, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{summarizer: summarizer, storage: storage, store: store, logger: logger}
}

// GenerateGuide produces the PDF for one subject unit. Summarization failures
// degrade to the raw source text so a guide is always produced.
func (p *Pipeline) GenerateGuide(ctx context.Context, subjectCode string, unit int, sourceTag, text string) error {
	if text == "" {
		return nil
	}

	body, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		if errors.Is(err, ErrNoCredentials) {
			p.logger.Info("no api keys, using raw source text",
				zap.String("subject", subjectCode),
				zap.Int("unit", unit))
		} else {
			p.logger.Warn("summarization failed, using raw source text",
				zap.String("subject", subjectCode),
				zap.Int("unit", unit),
				zap.Error(err))
		}
		body = text
		if len(body) > p.summarizer.budget {
			body = body[:p.summarizer.budget]
		}
	}

	title := fmt.Sprintf("%s Unit %d Study Guide", subjectCode, unit)
	pdfBytes, err := RenderPDF(title, body)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("%s_unit%d_%s.pdf", subjectCode, unit, sourceTag)
	path, err := p.storage.Save(filename, pdfBytes)
	if err != nil {
		return fmt.Errorf("store guide: %w", err)
	}

	p.store.InsertNote(ctx, models.NoteRecord{
		SubjectCode: subjectCode,
		Unit:        unit,
		Title:       title,
		Description: "Generated study guide",
		FileURL:     path,
		SourceName:  sourceTag,
	})
	p.logger.Info("study guide generated",
		zap.String("subject", subjectCode),
		zap.Int("unit", unit),
		zap.String("file", path))
	return nil
}
