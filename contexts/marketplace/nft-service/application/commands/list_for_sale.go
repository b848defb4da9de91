package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "mintbay/contexts/marketplace/nft-service/application"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	domainerrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	"mintbay/contexts/marketplace/nft-service/ports"
)

const listedEventType = "nft.listed"

type ListForSaleCommand struct {
	Owner          string
	TokenID        string
	PriceAmount    string
	IdempotencyKey string
}

type ListForSaleResult struct {
	Record   entities.Record
	Replayed bool
}

type ListForSaleUseCase struct {
	Records        ports.RecordRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDs            ports.IDGenerator
	Latency        time.Duration
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// Execute puts an owned record up for sale: price is updated and the listed
// flag set in place. Price positivity is validated by the caller; ownership
// is verified here.
func (u ListForSaleUseCase) Execute(ctx context.Context, cmd ListForSaleCommand) (ListForSaleResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Owner) == "" {
		return ListForSaleResult{}, domainerrors.ErrUnauthenticated
	}
	if strings.TrimSpace(cmd.TokenID) == "" {
		return ListForSaleResult{}, domainerrors.ErrInvalidRequest
	}

	simulateLatency(u.Latency)

	now := u.now()
	var out entities.Record
	replayed, err := runIdempotent(
		ctx,
		u.Idempotency,
		cmd.IdempotencyKey,
		hashRequest("nft_list_for_sale", cmd.Owner, cmd.TokenID, cmd.PriceAmount),
		now,
		defaultIdempotencyTTL(u.IdempotencyTTL),
		func(raw []byte) error { return json.Unmarshal(raw, &out) },
		func() ([]byte, error) {
			record, err := u.list(ctx, cmd, now)
			if err != nil {
				return nil, err
			}
			return json.Marshal(record)
		},
	)
	if err != nil {
		return ListForSaleResult{}, wrapUnexpected(err, domainerrors.ErrListingFailed)
	}

	logger.Info("nft listed for sale",
		"event", "nft_listed",
		"module", "marketplace/nft-service",
		"layer", "application",
		"token_id", out.TokenID,
		"owner", out.Creator,
		"price", out.DisplayPrice(),
		"replayed", replayed,
	)
	return ListForSaleResult{Record: out, Replayed: replayed}, nil
}

func (u ListForSaleUseCase) list(ctx context.Context, cmd ListForSaleCommand, now time.Time) (entities.Record, error) {
	tokenID := strings.TrimSpace(cmd.TokenID)
	record, found, err := u.Records.GetRecord(ctx, tokenID)
	if err != nil {
		return entities.Record{}, fmt.Errorf("load record %s: %w", tokenID, err)
	}
	if !found {
		return entities.Record{}, domainerrors.ErrTokenNotFound
	}
	if !record.OwnedBy(strings.TrimSpace(cmd.Owner)) {
		return entities.Record{}, domainerrors.ErrNotOwner
	}

	record.PriceAmount = strings.TrimSpace(cmd.PriceAmount)
	record.PriceCurrency = entities.CurrencySOL
	record.Listed = true
	record.UpdatedAt = now

	eventID, err := u.IDs.NewID(ctx)
	if err != nil {
		return entities.Record{}, fmt.Errorf("generate event id: %w", err)
	}
	event := ports.RecordEvent{
		EventID:    eventID,
		EventType:  listedEventType,
		TokenID:    record.TokenID,
		Title:      record.Title,
		Actor:      record.Creator,
		Price:      record.DisplayPrice(),
		OccurredAt: now,
	}

	if err := u.Records.UpdateRecordWithOutbox(ctx, record, event); err != nil {
		return entities.Record{}, err
	}
	return record, nil
}

func (u ListForSaleUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
