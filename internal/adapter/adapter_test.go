package adapter

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/crawl"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
	"github.com/glboysagar1-prog/study-tracker-sub000/pkg/config"
)

// fakeStore collects every record the adapters write.
type fakeStore struct {
	mu        sync.Mutex
	subjects  []models.Subject
	syllabus  []models.SyllabusContent
	notes     []models.NoteRecord
	questions []models.QuestionBankItem
	videos    []models.VideoResource
	circulars []models.Circular
	exams     []models.ExamSchedule
	results   []models.ResultStatistic
}

func (f *fakeStore) UpsertSubject(_ context.Context, rec models.Subject) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, rec)
	return rec.Code
}

func (f *fakeStore) UpsertSyllabus(_ context.Context, rec models.SyllabusContent) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syllabus = append(f.syllabus, rec)
	return "id"
}

func (f *fakeStore) InsertNote(_ context.Context, rec models.NoteRecord) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, rec)
	return true
}

func (f *fakeStore) InsertQuestion(_ context.Context, rec models.QuestionBankItem) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, rec)
	return true
}

func (f *fakeStore) InsertVideo(_ context.Context, rec models.VideoResource) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videos = append(f.videos, rec)
	return true
}

func (f *fakeStore) InsertCircular(_ context.Context, rec models.Circular) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.circulars = append(f.circulars, rec)
	return true
}

func (f *fakeStore) InsertExamSchedule(_ context.Context, rec models.ExamSchedule) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exams = append(f.exams, rec)
	return true
}

func (f *fakeStore) InsertResultStat(_ context.Context, rec models.ResultStatistic) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, rec)
	return true
}

// testPage builds a parsed page from fixture HTML.
func testPage(t *testing.T, rawURL, html string) *crawl.Page {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return &crawl.Page{URL: u, StatusCode: 200, Doc: doc}
}

// testDeps wires a live fetcher and fresh visited set for crawl-backed tests.
func testDeps(store ContentStore) Deps {
	return Deps{
		Store:   store,
		Fetcher: crawl.NewFetcher(5*time.Second, "test-agent"),
		Visited: crawl.NewVisited(nil, 0, nil),
		Crawl: config.CrawlConfig{
			MaxPages:       5,
			MaxConcurrency: 2,
			MinConcurrency: 1,
			MaxRetries:     0,
			RetryDelay:     10 * time.Millisecond,
		},
	}
}
