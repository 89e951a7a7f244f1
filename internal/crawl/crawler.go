package crawl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Metrics receives crawl instrumentation. The metrics collector implements
// it; the no-op default keeps tests quiet.
type Metrics interface {
	PageFetched(adapter string)
	PageRetried(adapter string)
	PageFailed(adapter string)
	PageStarted()
	PageDone()
}

type nopMetrics struct{}

func (nopMetrics) PageFetched(string) {}
func (nopMetrics) PageRetried(string) {}
func (nopMetrics) PageFailed(string)  {}
func (nopMetrics) PageStarted()       {}
func (nopMetrics) PageDone()          {}

// Handler processes one fetched page. A handler error is page-local: it is
// logged and the crawl moves on.
type Handler func(ctx context.Context, page *Page) error

// FailedHandler is the terminal callback for a page dropped after its retry
// budget.
type FailedHandler func(url string, err error)

// Config bounds one crawl.
type Config struct {
	Name           string
	MaxPages       int
	MaxConcurrency int
	MinConcurrency int
	MaxRetries     int
	RetryDelay     time.Duration
	Scope          []string
	Logger         *zap.Logger
	Metrics        Metrics
}

type request struct {
	url     string
	attempt int
}

// Crawler drains a bounded same-site frontier with a worker pool, modelled on
// the in-memory job queue pattern: buffered channel, N workers, failed pages
// re-enqueued after a delay until the retry budget runs out.
type Crawler struct {
	cfg      Config
	fetcher  PageFetcher
	visited  *Visited
	handler  Handler
	onFailed FailedHandler

	queue     chan request
	pending   sync.WaitGroup
	workers   sync.WaitGroup
	enqueued  int32
	processed int32
	dropped   int32
	seedHost  string

	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
	m      Metrics
}

// New builds a crawler. The handler runs concurrently up to MaxConcurrency;
// record writes it performs must go through the content store, which is safe
// for that.
func New(fetcher PageFetcher, visited *Visited, handler Handler, cfg Config) *Crawler {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 30
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 5
	}
	if cfg.MinConcurrency > 0 && cfg.MaxConcurrency < cfg.MinConcurrency {
		cfg.MaxConcurrency = cfg.MinConcurrency
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	if visited == nil {
		visited = NewVisited(nil, 0, cfg.Logger)
	}

	return &Crawler{
		cfg:     cfg,
		fetcher: fetcher,
		visited: visited,
		handler: handler,
		queue:   make(chan request, cfg.MaxPages+cfg.MaxConcurrency),
		logger:  cfg.Logger,
		m:       cfg.Metrics,
	}
}

// OnFailed registers the terminal failed-page callback.
func (c *Crawler) OnFailed(fn FailedHandler) {
	c.onFailed = fn
}

// Enqueue adds a same-site URL to the frontier if it passes the scope globs,
// has not been visited, and the page cap is not exhausted. Reports whether
// the URL was queued.
func (c *Crawler) Enqueue(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	if c.seedHost != "" && u.Host != c.seedHost {
		return false
	}
	if !InScope(c.cfg.Scope, u) {
		return false
	}
	return c.push(rawURL)
}

func (c *Crawler) push(rawURL string) bool {
	if !c.visited.Add(c.ctx, rawURL) {
		return false
	}
	if atomic.AddInt32(&c.enqueued, 1) > int32(c.cfg.MaxPages) {
		return false
	}
	c.pending.Add(1)
	select {
	case c.queue <- request{url: rawURL}:
		return true
	default:
		// Buffer is sized to the page cap; hitting this means the cap math
		// is wrong, not that the caller should block.
		c.pending.Done()
		return false
	}
}

// Run seeds the frontier and blocks until it drains, the page cap is reached,
// or the context is cancelled.
func (c *Crawler) Run(ctx context.Context, seeds ...string) error {
	if len(seeds) == 0 {
		return errors.New("no seed urls")
	}

	ctx, cancel := context.WithCancel(ctx)
	c.ctx = ctx
	c.cancel = cancel
	defer cancel()

	if u, err := url.Parse(seeds[0]); err == nil {
		c.seedHost = u.Host
	}
	// Seeds bypass the scope globs; scope constrains follow-ups only.
	for _, seed := range seeds {
		c.push(seed)
	}

	for i := 0; i < c.cfg.MaxConcurrency; i++ {
		c.workers.Add(1)
		go c.worker()
	}

	done := make(chan struct{})
	go func() {
		c.pending.Wait()
		close(done)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case <-done:
	}

	cancel()
	c.workers.Wait()

	processed := atomic.LoadInt32(&c.processed)
	dropped := atomic.LoadInt32(&c.dropped)
	c.logger.Info("crawl finished",
		zap.String("crawler", c.cfg.Name),
		zap.Int32("pages_processed", processed),
		zap.Int32("pages_dropped", dropped))

	// A crawl that never got a single page off the ground means the source
	// itself is broken, which the caller should hear about.
	if runErr == nil && processed == 0 && dropped > 0 {
		runErr = fmt.Errorf("crawl %s: no pages reachable, %d dropped", c.cfg.Name, dropped)
	}
	return runErr
}

func (c *Crawler) worker() {
	defer c.workers.Done()
	for {
		select {
		case <-c.ctx.Done():
			return
		case req := <-c.queue:
			c.process(req)
		}
	}
}

func (c *Crawler) process(req request) {
	c.m.PageStarted()
	defer c.m.PageDone()

	page, err := c.fetcher.Fetch(c.ctx, req.url)
	if err != nil {
		c.retry(req, err)
		return
	}

	c.m.PageFetched(c.cfg.Name)
	atomic.AddInt32(&c.processed, 1)
	if err := c.handler(c.ctx, page); err != nil {
		// Extraction failures are page-local; siblings keep going.
		c.logger.Warn("page handler failed",
			zap.String("crawler", c.cfg.Name),
			zap.String("url", req.url),
			zap.Error(err))
	}
	c.pending.Done()
}

func (c *Crawler) retry(req request, err error) {
	req.attempt++
	if req.attempt > c.cfg.MaxRetries {
		atomic.AddInt32(&c.dropped, 1)
		c.m.PageFailed(c.cfg.Name)
		c.logger.Warn("page abandoned after retries",
			zap.String("crawler", c.cfg.Name),
			zap.String("url", req.url),
			zap.Int("attempts", req.attempt),
			zap.Error(err))
		if c.onFailed != nil {
			c.onFailed(req.url, err)
		}
		c.pending.Done()
		return
	}

	c.m.PageRetried(c.cfg.Name)
	c.logger.Debug("page fetch failed, retrying",
		zap.String("crawler", c.cfg.Name),
		zap.String("url", req.url),
		zap.Int("attempt", req.attempt),
		zap.Error(err))

	go func(r request) {
		timer := time.NewTimer(c.cfg.RetryDelay)
		defer timer.Stop()
		select {
		case <-c.ctx.Done():
			c.pending.Done()
		case <-timer.C:
			select {
			case c.queue <- r:
			default:
				c.pending.Done()
			}
		}
	}(req)
}
