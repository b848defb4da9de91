package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "mintbay/contexts/marketplace/nft-service/application"
	"mintbay/contexts/marketplace/nft-service/ports"
)

const defaultTopic = "nft.events"

type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	Topic     string
	BatchSize int
	Logger    *slog.Logger
}

// RunOnce drains one batch of pending outbox rows onto the event bus.
func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}
	topic := r.Topic
	if topic == "" {
		topic = defaultTopic
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("outbox list pending failed",
			"event", "nft_outbox_list_failed",
			"module", "marketplace/nft-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	published := 0
	for _, message := range pending {
		var envelope ports.EventEnvelope
		if err := json.Unmarshal(message.Payload, &envelope); err != nil {
			// An undecodable row would stall the relay at the same
			// position every cycle; mark it sent and move on.
			logger.Error("outbox payload decode failed, skipping row",
				"event", "nft_outbox_decode_failed",
				"module", "marketplace/nft-service",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"error", err.Error(),
			)
			if err := r.Outbox.MarkOutboxSent(ctx, message.OutboxID, now); err != nil {
				return err
			}
			continue
		}
		if err := r.Publisher.Publish(ctx, topic, envelope); err != nil {
			logger.Error("outbox publish failed",
				"event", "nft_outbox_publish_failed",
				"module", "marketplace/nft-service",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"event_type", envelope.EventType,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxSent(ctx, message.OutboxID, now); err != nil {
			logger.Error("outbox mark sent failed",
				"event", "nft_outbox_mark_sent_failed",
				"module", "marketplace/nft-service",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		published++
	}

	if published > 0 {
		logger.Info("outbox relay cycle completed",
			"event", "nft_outbox_relay_completed",
			"module", "marketplace/nft-service",
			"layer", "worker",
			"published", published,
		)
	}
	return nil
}
