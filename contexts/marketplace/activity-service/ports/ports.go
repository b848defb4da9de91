package ports

import (
	"context"
	"time"

	contractsv1 "mintbay/contracts/gen/events/v1"
)

const (
	KindMinted    = "minted"
	KindListed    = "listed"
	KindPurchased = "purchased"
)

// Entry is one line of the marketplace's recent-activity feed.
type Entry struct {
	EntryID    string    `json:"entry_id"`
	Kind       string    `json:"kind"`
	TokenID    string    `json:"token_id"`
	Title      string    `json:"title"`
	Actor      string    `json:"actor"`
	Price      string    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

func IsValidKind(value string) bool {
	switch value {
	case KindMinted, KindListed, KindPurchased:
		return true
	default:
		return false
	}
}

// FeedStore keeps a bounded most-recent-first feed.
type FeedStore interface {
	Append(ctx context.Context, entry Entry) error
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}

type Clock interface {
	Now() time.Time
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventSubscriber attaches a consumer-group handler to a topic.
type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, EventEnvelope) error) error
}
