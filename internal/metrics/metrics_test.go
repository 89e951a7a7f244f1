package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorWriteCounts(t *testing.T) {
	c := New()
	c.RecordWrite("note")
	c.RecordWrite("note")
	c.RecordWrite("syllabus")

	counts := c.WriteCounts()
	assert.Equal(t, 2, counts["note"])
	assert.Equal(t, 1, counts["syllabus"])
	assert.NotContains(t, counts, "question")
}

func TestCollectorHandlerExposesCrawlCounters(t *testing.T) {
	c := New()
	c.PageFetched("studysite")
	c.PageRetried("studysite")
	c.AdapterFailure("forum")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `crawl_pages_fetched_total{adapter="studysite"} 1`)
	assert.Contains(t, string(body), `adapter_failures_total{adapter="forum"} 1`)
}

func TestCollectorGaugeTracksInFlight(t *testing.T) {
	c := New()
	c.PageStarted()
	c.PageStarted()
	c.PageDone()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Result().Body)
	assert.Contains(t, string(body), "crawl_pages_in_flight 1")
}
