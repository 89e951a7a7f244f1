package studyguide

import "sync"

// keyRing hands out API keys round-robin so quota exhaustion on one key does
// not stall the whole run.
type keyRing struct {
	mu   sync.Mutex
	keys []string
	next int
}

func newKeyRing(keys []string) *keyRing {
	ring := &keyRing{}
	for _, k := range keys {
		if k != "" {
			ring.keys = append(ring.keys, k)
		}
	}
	return ring
}

func (r *keyRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}

// Next returns the next key in rotation, or false when none are configured.
func (r *keyRing) Next() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.keys) == 0 {
		return "", false
	}
	key := r.keys[r.next]
	r.next = (r.next + 1) % len(r.keys)
	return key, true
}
