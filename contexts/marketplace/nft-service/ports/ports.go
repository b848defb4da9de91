package ports

import (
	"context"
	"time"

	"mintbay/contexts/marketplace/nft-service/domain/entities"
	contractsv1 "mintbay/contracts/gen/events/v1"
)

// RecordEvent is the outbound integration payload persisted to the outbox
// alongside the state change it describes.
type RecordEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	TokenID    string    `json:"token_id"`
	Title      string    `json:"title"`
	Actor      string    `json:"actor"`
	Price      string    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecordRepository owns NFT record persistence and the write transaction
// boundary for mutations. Implementations must preserve collection order
// for the list reads.
type RecordRepository interface {
	GetRecord(ctx context.Context, tokenID string) (entities.Record, bool, error)
	ListByOwner(ctx context.Context, identity string) ([]entities.Record, error)
	ListListed(ctx context.Context) ([]entities.Record, error)
	// CreateRecordWithOutbox must atomically append the record and its event.
	CreateRecordWithOutbox(ctx context.Context, record entities.Record, event RecordEvent) error
	// UpdateRecordWithOutbox must atomically replace the record and append the event.
	UpdateRecordWithOutbox(ctx context.Context, record entities.Record, event RecordEvent) error
}

// IdempotencyRecord captures dedupe metadata for mutating requests that
// carry an idempotency key.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	Payload     []byte
	ExpiresAt   time.Time
}

type IdempotencyStore interface {
	Get(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	Put(ctx context.Context, record IdempotencyRecord) error
}

// Clock allows deterministic testing of timestamps and TTLs.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces opaque identifiers (events, idempotency payloads).
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// TokenIDGenerator mints the 44-character mock addresses used as token ids.
type TokenIDGenerator interface {
	NewTokenID(ctx context.Context) (string, error)
}

// ReceiptGenerator produces the 88-character mock transaction signatures
// returned from purchases.
type ReceiptGenerator interface {
	NewReceipt(ctx context.Context) (string, error)
}

// Latency is the simulated chain transaction time per mutation. Zero values
// disable the wait (tests); the demo runs 2s / 1.5s / 2s.
type Latency struct {
	Mint     time.Duration
	List     time.Duration
	Purchase time.Duration
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
