package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guideRecorder struct {
	mu    sync.Mutex
	calls []guideCall
}

type guideCall struct {
	subjectCode string
	unit        int
	sourceTag   string
	text        string
}

func (g *guideRecorder) GenerateGuide(_ context.Context, subjectCode string, unit int, sourceTag, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, guideCall{subjectCode, unit, sourceTag, text})
	return nil
}

func TestTutorialAdapterHandsTextToGuidePipeline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tutorial/unit-2/stacks.html", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>
<h1>Stack Operations</h1>
<p>A stack is a linear structure where insertion and deletion happen at the same end.</p>
<p>The push operation adds an element and the pop operation removes the newest element.</p>
</body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fs := &fakeStore{}
	guides := &guideRecorder{}
	deps := testDeps(fs)
	deps.Guides = guides

	a := NewTutorialAdapter(deps)
	err := a.Run(context.Background(), Params{
		SubjectName: "Data Structures",
		SubjectCode: "3130702",
		SeedURL:     srv.URL + "/tutorial/unit-2/stacks.html",
	})
	require.NoError(t, err)

	require.Len(t, guides.calls, 1)
	call := guides.calls[0]
	assert.Equal(t, "3130702", call.subjectCode)
	assert.Equal(t, 2, call.unit)
	assert.Equal(t, "tutorial", call.sourceTag)
	assert.Contains(t, call.text, "push operation")
}

func TestTutorialAdapterWithoutPipelineStillSucceeds(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><h1>Unit 1</h1><p>Paragraph long enough to count as instructional content here.</p></body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := NewTutorialAdapter(testDeps(&fakeStore{}))
	assert.NoError(t, a.Run(context.Background(), Params{
		SubjectCode: "3130702",
		SeedURL:     srv.URL + "/",
	}))
}
