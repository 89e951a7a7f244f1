package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const visitedKeyPrefix = "crawl:visited:"

// Visited deduplicates frontier URLs. The in-process set is authoritative for
// one run; when a Redis client is configured, a SETNX layer with TTL lets
// repeated runs skip pages fetched recently.
type Visited struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewVisited builds a visited set. client may be nil.
func NewVisited(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Visited {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Visited{
		seen:   make(map[string]struct{}),
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Add marks the URL as visited and reports whether it was new. A Redis error
// counts as new: an unavailable cache must not stall the crawl.
func (v *Visited) Add(ctx context.Context, url string) bool {
	v.mu.Lock()
	if _, ok := v.seen[url]; ok {
		v.mu.Unlock()
		return false
	}
	v.seen[url] = struct{}{}
	v.mu.Unlock()

	if v.client == nil {
		return true
	}
	if ctx == nil {
		ctx = context.Background()
	}

	fresh, err := v.client.SetNX(ctx, visitedKeyPrefix+url, 1, v.ttl).Result()
	if err != nil {
		v.logger.Debug("visited cache unavailable", zap.Error(err))
		return true
	}
	return fresh
}
