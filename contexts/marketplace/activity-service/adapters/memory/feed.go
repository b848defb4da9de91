package memory

import (
	"context"
	"sync"

	"mintbay/contexts/marketplace/activity-service/ports"
)

const defaultCapacity = 100

// Feed is a bounded most-recent-first ring of activity entries.
type Feed struct {
	mu       sync.RWMutex
	entries  []ports.Entry
	capacity int
}

func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Feed{capacity: capacity}
}

func (f *Feed) Append(_ context.Context, entry ports.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append([]ports.Entry{entry}, f.entries...)
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:f.capacity]
	}
	return nil
}

func (f *Feed) ListRecent(_ context.Context, limit int) ([]ports.Entry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if limit <= 0 || limit > len(f.entries) {
		limit = len(f.entries)
	}
	out := make([]ports.Entry, limit)
	copy(out, f.entries[:limit])
	return out, nil
}
