package adapter

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/config"
)

// ErrMissingSubject is returned by per-subject adapters invoked without a
// subject code. Content keyed by subject must never be written without one.
var ErrMissingSubject = errors.New("adapter requires a subject code")

// Params identifies one adapter invocation.
type Params struct {
	SubjectName string
	SubjectCode string
	SeedURL     string
}

// Adapter is a source-specific crawler/extractor. Run is side-effecting only:
// it writes records through the content store and returns an error solely for
// fatal, non-page-level failures.
type Adapter interface {
	Name() string
	Run(ctx context.Context, p Params) error
}

// ContentStore is the slice of the store adapters write through. Every method
// is safe under concurrent invocation from a crawl worker pool.
type ContentStore interface {
	UpsertSubject(ctx context.Context, rec models.Subject) string
	UpsertSyllabus(ctx context.Context, rec models.SyllabusContent) string
	InsertNote(ctx context.Context, rec models.NoteRecord) bool
	InsertQuestion(ctx context.Context, rec models.QuestionBankItem) bool
	InsertVideo(ctx context.Context, rec models.VideoResource) bool
	InsertCircular(ctx context.Context, rec models.Circular) bool
	InsertExamSchedule(ctx context.Context, rec models.ExamSchedule) bool
	InsertResultStat(ctx context.Context, rec models.ResultStatistic) bool
}

// GuideGenerator renders accumulated source text into a stored study guide.
// Implemented by the studyguide pipeline.
type GuideGenerator interface {
	GenerateGuide(ctx context.Context, subjectCode string, unit int, sourceTag, text string) error
}

// Deps bundles what every concrete adapter needs.
type Deps struct {
	Store   ContentStore
	Fetcher crawl.PageFetcher
	Visited *crawl.Visited
	Crawl   config.CrawlConfig
	Metrics crawl.Metrics
	Guides  GuideGenerator
	Logger  *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// newCrawler builds a bounded crawler for one adapter run using the shared
// process-wide crawl tunables.
func (d Deps) newCrawler(name string, scope []string, handler crawl.Handler) *crawl.Crawler {
	c := crawl.New(d.Fetcher, d.Visited, handler, crawl.Config{
		Name:           name,
		MaxPages:       d.Crawl.MaxPages,
		MaxConcurrency: d.Crawl.MaxConcurrency,
		MinConcurrency: d.Crawl.MinConcurrency,
		MaxRetries:     d.Crawl.MaxRetries,
		RetryDelay:     d.Crawl.RetryDelay,
		Scope:          scope,
		Logger:         d.logger().Named(name),
		Metrics:        d.Metrics,
	})
	c.OnFailed(func(url string, err error) {
		d.logger().Warn("page dropped",
			zap.String("adapter", name),
			zap.String("url", url),
			zap.Error(err))
	})
	return c
}

// ensureSubject registers the subject on first reference.
func (d Deps) ensureSubject(ctx context.Context, p Params) {
	if p.SubjectCode == "" {
		return
	}
	name := p.SubjectName
	if name == "" {
		name = p.SubjectCode
	}
	d.Store.UpsertSubject(ctx, models.Subject{Code: p.SubjectCode, Name: name})
}
