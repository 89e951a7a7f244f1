package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/adapter"
	"github.com/glboysagar1-prog/study-tracker-sub000/internal/models"
)

type stubAdapter struct {
	name string
	run  func(ctx context.Context, p adapter.Params) error

	mu    sync.Mutex
	calls []adapter.Params
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Run(ctx context.Context, p adapter.Params) error {
	s.mu.Lock()
	s.calls = append(s.calls, p)
	s.mu.Unlock()
	if s.run != nil {
		return s.run(ctx, p)
	}
	return nil
}

type failureCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (f *failureCounter) AdapterFailure(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[name]++
}

// stubFactories swaps every registered adapter for a recording stub and
// returns the stubs by name.
func stubFactories(o *Orchestrator) map[string]*stubAdapter {
	stubs := map[string]*stubAdapter{}
	factories := map[string]adapter.Factory{}
	for name := range adapter.Factories {
		stub := &stubAdapter{name: name}
		stubs[name] = stub
		factories[name] = func(adapter.Deps) adapter.Adapter { return stub }
	}
	o.factories = factories
	return stubs
}

func TestRunInvokesSearchAdaptersForUnmappedSubject(t *testing.T) {
	subjects := []Subject{{Name: "Quantum Computing", Code: "QC101"}}
	o := New(adapter.Deps{}, subjects, 0, nil, nil)
	stubs := stubFactories(o)

	require.NoError(t, o.Run(context.Background()))

	for _, name := range []string{"videosearch", "forum"} {
		calls := stubs[name].calls
		require.Len(t, calls, 1, name)
		assert.Equal(t, "Quantum Computing", calls[0].SubjectName)
		assert.Equal(t, "QC101", calls[0].SubjectCode)
		assert.Empty(t, calls[0].SeedURL, "unmapped subjects have no seed, the adapter builds a query")
	}
}

func TestRunOrderAndSeeds(t *testing.T) {
	subjects := []Subject{{
		Name: "Data Structures",
		Code: "3130702",
		Sources: map[string]string{
			"studysite": "https://example.edu/ds/syllabus/",
			"mcqbank":   "https://example.edu/ds/mcq/",
		},
	}}
	o := New(adapter.Deps{}, subjects, 0, nil, nil)
	stubs := stubFactories(o)

	require.NoError(t, o.Run(context.Background()))

	assert.Equal(t, GlobalSources["portal"], stubs["portal"].calls[0].SeedURL)
	assert.Empty(t, stubs["portal"].calls[0].SubjectCode, "global adapters run subject-agnostic")

	assert.Equal(t, "https://example.edu/ds/syllabus/", stubs["studysite"].calls[0].SeedURL)
	assert.Equal(t, "https://example.edu/ds/mcq/", stubs["mcqbank"].calls[0].SeedURL)
	assert.Empty(t, stubs["tutorial"].calls[0].SeedURL)
}

func TestRunIsolatesPanicsAndErrors(t *testing.T) {
	subjects := []Subject{{Name: "Data Structures", Code: "3130702"}}
	failures := &failureCounter{}
	o := New(adapter.Deps{}, subjects, 0, failures, nil)
	stubs := stubFactories(o)

	stubs["studysite"].run = func(context.Context, adapter.Params) error { panic("selector blew up") }
	stubs["mcqbank"].run = func(context.Context, adapter.Params) error { return errors.New("site unreachable") }

	require.NoError(t, o.Run(context.Background()))

	assert.Equal(t, 1, failures.counts["studysite"])
	assert.Equal(t, 1, failures.counts["mcqbank"])
	assert.Len(t, stubs["forum"].calls, 1, "later adapters still run")
}

func TestMergeSubjects(t *testing.T) {
	registered := []Subject{{Name: "Data Structures", Code: "3130702", Sources: map[string]string{"studysite": "https://x/"}}}
	known := []models.Subject{
		{Name: "Data Structures", Code: "3130702"},
		{Name: "Compiler Design", Code: "3170701"},
	}

	merged := MergeSubjects(registered, known)
	require.Len(t, merged, 2)
	assert.Equal(t, "3130702", merged[0].Code)
	assert.NotEmpty(t, merged[0].Sources, "registry seeds win over stored rows")
	assert.Equal(t, "Compiler Design", merged[1].Name)
	assert.Empty(t, merged[1].Sources)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := New(adapter.Deps{}, DefaultSubjects, 0, nil, nil)
	stubFactories(o)

	assert.ErrorIs(t, o.Run(ctx), context.Canceled)
}
