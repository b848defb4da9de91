package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"mintbay/contexts/marketplace/nft-service/domain/entities"
	domainerrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	"mintbay/contexts/marketplace/nft-service/ports"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates the module's tables. Called once from bootstrap.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&recordModel{}, &outboxModel{}, &idempotencyModel{})
}

func (r *Repository) GetRecord(ctx context.Context, tokenID string) (entities.Record, bool, error) {
	var row recordModel
	err := r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Record{}, false, nil
		}
		return entities.Record{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListByOwner(ctx context.Context, identity string) ([]entities.Record, error) {
	var rows []recordModel
	if err := r.db.WithContext(ctx).
		Where("creator = ?", identity).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListListed(ctx context.Context) ([]entities.Record, error) {
	var rows []recordModel
	if err := r.db.WithContext(ctx).
		Where("listed = ?", true).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) CreateRecordWithOutbox(ctx context.Context, record entities.Record, event ports.RecordEvent) error {
	payload, err := marshalEnvelope(event)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recordModelFrom(record)).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", domainerrors.ErrTokenAlreadyExists, record.TokenID)
			}
			return err
		}
		return tx.Create(outboxModelFrom(event, payload)).Error
	})
}

func (r *Repository) UpdateRecordWithOutbox(ctx context.Context, record entities.Record, event ports.RecordEvent) error {
	payload, err := marshalEnvelope(event)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&recordModel{}).
			Where("token_id = ?", record.TokenID).
			Updates(map[string]any{
				"creator":        record.Creator,
				"price_amount":   record.PriceAmount,
				"price_currency": record.PriceCurrency,
				"listed":         record.Listed,
				"updated_at":     record.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTokenNotFound
		}
		return tx.Create(outboxModelFrom(event, payload)).Error
	})
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      row.Payload,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&outboxModel{}).
		Where("outbox_id = ? AND status = ?", outboxID, outboxStatusPending).
		Updates(map[string]any{"status": outboxStatusSent, "sent_at": sentAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("outbox message not found or already sent: %s", outboxID)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}
	return ports.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		Payload:     row.Payload,
		ExpiresAt:   row.ExpiresAt,
	}, true, nil
}

func (r *Repository) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	return r.db.WithContext(ctx).Save(&idempotencyModel{
		Key:         record.Key,
		RequestHash: record.RequestHash,
		Payload:     record.Payload,
		ExpiresAt:   record.ExpiresAt,
	}).Error
}

type recordModel struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	TokenID       string `gorm:"uniqueIndex;size:64"`
	Title         string
	Creator       string `gorm:"index"`
	PriceAmount   string
	PriceCurrency string
	ImageURL      string
	Description   string
	Listed        bool `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (recordModel) TableName() string {
	return "nft_records"
}

func recordModelFrom(record entities.Record) *recordModel {
	return &recordModel{
		TokenID:       record.TokenID,
		Title:         record.Title,
		Creator:       record.Creator,
		PriceAmount:   record.PriceAmount,
		PriceCurrency: record.PriceCurrency,
		ImageURL:      record.ImageURL,
		Description:   record.Description,
		Listed:        record.Listed,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

func (m recordModel) toEntity() entities.Record {
	return entities.Record{
		TokenID:       m.TokenID,
		Title:         m.Title,
		Creator:       m.Creator,
		PriceAmount:   m.PriceAmount,
		PriceCurrency: m.PriceCurrency,
		ImageURL:      m.ImageURL,
		Description:   m.Description,
		Listed:        m.Listed,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toEntities(rows []recordModel) []entities.Record {
	items := make([]entities.Record, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

type outboxModel struct {
	OutboxID     string `gorm:"primaryKey;size:64"`
	EventType    string `gorm:"index"`
	PartitionKey string
	Payload      []byte
	Status       string `gorm:"index;default:pending"`
	CreatedAt    time.Time
	SentAt       *time.Time
}

func (outboxModel) TableName() string {
	return "nft_outbox"
}

func outboxModelFrom(event ports.RecordEvent, payload []byte) *outboxModel {
	return &outboxModel{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.TokenID,
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    event.OccurredAt,
	}
}

type idempotencyModel struct {
	Key         string `gorm:"primaryKey;size:128"`
	RequestHash string
	Payload     []byte
	ExpiresAt   time.Time `gorm:"index"`
}

func (idempotencyModel) TableName() string {
	return "nft_idempotency"
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
