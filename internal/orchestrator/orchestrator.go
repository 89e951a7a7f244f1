package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/glboysagar1-prog/study-tracker-sub000/internal/adapter"
)

// globalOrder runs once per invocation; subjectOrder runs for every subject.
// The order is fixed so repeated runs hit sources in the same sequence.
var (
	globalOrder  = []string{"portal", "results"}
	subjectOrder = []string{"studysite", "materialsite", "tutorial", "mcqbank", "videosearch", "courseplatform", "forum"}
)

// FailureRecorder counts adapter-level failures. The metrics collector
// implements it.
type FailureRecorder interface {
	AdapterFailure(adapter string)
}

type nopFailures struct{}

func (nopFailures) AdapterFailure(string) {}

// Orchestrator drives the full ingestion run: the global adapters first, then
// every registered subject through the fixed adapter sequence. One failing or
// panicking adapter never takes down the rest of the run.
type Orchestrator struct {
	deps      adapter.Deps
	factories map[string]adapter.Factory
	subjects  []Subject
	delay     time.Duration
	failures  FailureRecorder
	logger    *zap.Logger
}

// New builds an orchestrator over the registered adapter factories.
func New(deps adapter.Deps, subjects []Subject, delay time.Duration, failures FailureRecorder, logger *zap.Logger) *Orchestrator {
	if failures == nil {
		failures = nopFailures{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		deps:      deps,
		factories: adapter.Factories,
		subjects:  subjects,
		delay:     delay,
		failures:  failures,
		logger:    logger,
	}
}

// Run executes the whole ingestion sequence. It returns early only on context
// cancellation.
func (o *Orchestrator) Run(ctx context.Context) error {
	for _, name := range globalOrder {
		o.runAdapter(ctx, name, adapter.Params{SeedURL: GlobalSources[name]})
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	for i, sub := range o.subjects {
		if i > 0 && !o.pause(ctx) {
			return ctx.Err()
		}
		o.logger.Info("subject started",
			zap.String("subject", sub.Name),
			zap.String("code", sub.Code))

		for _, name := range subjectOrder {
			o.runAdapter(ctx, name, adapter.Params{
				SubjectName: sub.Name,
				SubjectCode: sub.Code,
				SeedURL:     sub.Sources[name],
			})
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// runAdapter isolates one adapter invocation: a panic or error is logged and
// counted, and the run moves on.
func (o *Orchestrator) runAdapter(ctx context.Context, name string, p adapter.Params) {
	factory, ok := o.factories[name]
	if !ok {
		o.logger.Error("unknown adapter", zap.String("adapter", name))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			o.failures.AdapterFailure(name)
			o.logger.Error("adapter panicked",
				zap.String("adapter", name),
				zap.String("subject", p.SubjectCode),
				zap.Any("panic", r))
		}
	}()

	if err := factory(o.deps).Run(ctx, p); err != nil {
		o.failures.AdapterFailure(name)
		o.logger.Error("adapter failed",
			zap.String("adapter", name),
			zap.String("subject", p.SubjectCode),
			zap.Error(err))
	}
}

// pause applies the politeness delay between subjects.
func (o *Orchestrator) pause(ctx context.Context) bool {
	if o.delay <= 0 {
		return true
	}
	select {
	case <-time.After(o.delay):
		return true
	case <-ctx.Done():
		return false
	}
}
