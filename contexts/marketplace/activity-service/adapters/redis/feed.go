package redisadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mintbay/contexts/marketplace/activity-service/ports"
)

const (
	feedKey         = "activity:feed"
	defaultCapacity = 100
)

// Feed keeps the recent-activity list in redis so worker and api processes
// can share it. Entries are JSON blobs in a LPUSH/LTRIM bounded list.
type Feed struct {
	client   *redis.Client
	capacity int64
}

func NewFeed(client *redis.Client, capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Feed{client: client, capacity: int64(capacity)}
}

func (f *Feed) Append(ctx context.Context, entry ports.Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal activity entry: %w", err)
	}
	pipe := f.client.TxPipeline()
	pipe.LPush(ctx, feedKey, payload)
	pipe.LTrim(ctx, feedKey, 0, f.capacity-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append activity entry: %w", err)
	}
	return nil
}

func (f *Feed) ListRecent(ctx context.Context, limit int) ([]ports.Entry, error) {
	if limit <= 0 {
		limit = int(f.capacity)
	}
	raw, err := f.client.LRange(ctx, feedKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read activity feed: %w", err)
	}
	entries := make([]ports.Entry, 0, len(raw))
	for _, item := range raw {
		var entry ports.Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode activity entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
