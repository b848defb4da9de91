package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"mintbay/contexts/marketplace/activity-service/application"
	"mintbay/contexts/marketplace/activity-service/ports"
)

const (
	defaultTopic         = "nft.events"
	defaultConsumerGroup = "activity-feed-cg"
)

// recordEventPayload mirrors the nft-service outbox payload shape. The two
// contexts stay decoupled: only this JSON contract is shared.
type recordEventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	TokenID    string    `json:"token_id"`
	Title      string    `json:"title"`
	Actor      string    `json:"actor"`
	Price      string    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

type NFTEventsConsumer struct {
	Subscriber    ports.EventSubscriber
	Service       application.Service
	Topic         string
	ConsumerGroup string
	Logger        *slog.Logger
}

// Start subscribes the feed projection to the nft event stream.
func (c NFTEventsConsumer) Start(ctx context.Context) error {
	topic := c.Topic
	if topic == "" {
		topic = defaultTopic
	}
	group := c.ConsumerGroup
	if group == "" {
		group = defaultConsumerGroup
	}
	return c.Subscriber.Subscribe(ctx, topic, group, c.handle)
}

func (c NFTEventsConsumer) handle(ctx context.Context, envelope ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)

	kind, ok := kindFromEventType(envelope.EventType)
	if !ok {
		logger.Debug("ignoring event outside the nft stream",
			"event", "activity_event_ignored",
			"module", "marketplace/activity-service",
			"layer", "worker",
			"event_type", envelope.EventType,
		)
		return nil
	}

	var payload recordEventPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		logger.Error("event payload decode failed",
			"event", "activity_event_decode_failed",
			"module", "marketplace/activity-service",
			"layer", "worker",
			"event_id", envelope.EventID,
			"error", err.Error(),
		)
		return err
	}

	return c.Service.Record(ctx, ports.Entry{
		EntryID:    envelope.EventID,
		Kind:       kind,
		TokenID:    payload.TokenID,
		Title:      payload.Title,
		Actor:      payload.Actor,
		Price:      payload.Price,
		OccurredAt: payload.OccurredAt,
	})
}

func kindFromEventType(eventType string) (string, bool) {
	suffix, found := strings.CutPrefix(eventType, "nft.")
	if !found || !ports.IsValidKind(suffix) {
		return "", false
	}
	return suffix, true
}
