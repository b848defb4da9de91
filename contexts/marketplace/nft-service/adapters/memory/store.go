package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"mintbay/contexts/marketplace/nft-service/domain/entities"
	domainerrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	"mintbay/contexts/marketplace/nft-service/domain/services"
	"mintbay/contexts/marketplace/nft-service/ports"
)

type outboxRow struct {
	message ports.OutboxMessage
	sent    bool
}

// Store is the in-memory marketplace collection. It keeps records in
// insertion order (collection order) with a token index on top,
// and doubles as outbox, idempotency store, clock and id generators so a
// module can be wired from a single instance.
type Store struct {
	mu sync.RWMutex

	order          []string
	recordsByToken map[string]entities.Record
	outbox         []outboxRow
	idempotency    map[string]ports.IdempotencyRecord
	sequence       uint64
}

func NewStore(seed []entities.Record) *Store {
	s := &Store{
		recordsByToken: make(map[string]entities.Record),
		idempotency:    make(map[string]ports.IdempotencyRecord),
	}
	for _, record := range seed {
		if _, exists := s.recordsByToken[record.TokenID]; exists {
			continue
		}
		s.order = append(s.order, record.TokenID)
		s.recordsByToken[record.TokenID] = record
	}
	return s
}

func (s *Store) GetRecord(_ context.Context, tokenID string) (entities.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.recordsByToken[tokenID]
	return record, ok, nil
}

func (s *Store) ListByOwner(_ context.Context, identity string) ([]entities.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.Record
	for _, tokenID := range s.order {
		if record := s.recordsByToken[tokenID]; record.OwnedBy(identity) {
			items = append(items, record)
		}
	}
	return items, nil
}

func (s *Store) ListListed(_ context.Context) ([]entities.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.Record
	for _, tokenID := range s.order {
		if record := s.recordsByToken[tokenID]; record.Listed {
			items = append(items, record)
		}
	}
	return items, nil
}

func (s *Store) CreateRecordWithOutbox(_ context.Context, record entities.Record, event ports.RecordEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.recordsByToken[record.TokenID]; exists {
		return fmt.Errorf("%w: %s", domainerrors.ErrTokenAlreadyExists, record.TokenID)
	}
	payload, err := marshalEnvelope(event)
	if err != nil {
		return err
	}

	s.order = append(s.order, record.TokenID)
	s.recordsByToken[record.TokenID] = record
	s.appendOutbox(event, payload)
	return nil
}

func (s *Store) UpdateRecordWithOutbox(_ context.Context, record entities.Record, event ports.RecordEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.recordsByToken[record.TokenID]; !exists {
		return domainerrors.ErrTokenNotFound
	}
	payload, err := marshalEnvelope(event)
	if err != nil {
		return err
	}

	s.recordsByToken[record.TokenID] = record
	s.appendOutbox(event, payload)
	return nil
}

func (s *Store) appendOutbox(event ports.RecordEvent, payload []byte) {
	s.outbox = append(s.outbox, outboxRow{
		message: ports.OutboxMessage{
			OutboxID:     fmt.Sprintf("outbox_%d", len(s.outbox)+1),
			EventType:    event.EventType,
			PartitionKey: event.TokenID,
			Payload:      payload,
			CreatedAt:    event.OccurredAt,
		},
	})
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []ports.OutboxMessage
	for _, row := range s.outbox {
		if row.sent {
			continue
		}
		pending = append(pending, row.message)
		if limit > 0 && len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			s.outbox[i].sent = true
			return nil
		}
	}
	return fmt.Errorf("outbox message not found: %s", outboxID)
}

func (s *Store) Get(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.idempotency[key]
	if !ok || now.After(record.ExpiresAt) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) Put(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return fmt.Sprintf("evt_%d", atomic.AddUint64(&s.sequence, 1)), nil
}

func (s *Store) NewTokenID(_ context.Context) (string, error) {
	return services.NewMockAddress(services.TokenAddressLength)
}

func (s *Store) NewReceipt(_ context.Context) (string, error) {
	return services.NewMockAddress(services.ReceiptLength)
}

func marshalEnvelope(event ports.RecordEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal record event: %w", err)
	}
	envelope := ports.EventEnvelope{
		EventID:       event.EventID,
		EventType:     event.EventType,
		OccurredAt:    event.OccurredAt,
		SourceService: "mintbay",
		SchemaVersion: 1,
		PartitionKey:  event.TokenID,
		Data:          data,
	}
	return json.Marshal(envelope)
}
