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

const purchasedEventType = "nft.purchased"

type PurchaseCommand struct {
	Buyer          string
	TokenID        string
	ExpectedPrice  string
	IdempotencyKey string
}

type PurchaseResult struct {
	Receipt  string
	Record   entities.Record
	Replayed bool
}

type purchaseOutcome struct {
	Receipt string          `json:"receipt"`
	Record  entities.Record `json:"record"`
}

type PurchaseUseCase struct {
	Records        ports.RecordRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDs            ports.IDGenerator
	Receipts       ports.ReceiptGenerator
	Latency        time.Duration
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// Execute transfers ownership to the buyer and delists the record. Transfer
// is unconditional: no payment step is modeled and a record that is not
// currently listed still transfers (the looseness is logged, not rejected).
func (u PurchaseUseCase) Execute(ctx context.Context, cmd PurchaseCommand) (PurchaseResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Buyer) == "" {
		return PurchaseResult{}, domainerrors.ErrUnauthenticated
	}
	if strings.TrimSpace(cmd.TokenID) == "" {
		return PurchaseResult{}, domainerrors.ErrInvalidRequest
	}

	simulateLatency(u.Latency)

	now := u.now()
	var out purchaseOutcome
	replayed, err := runIdempotent(
		ctx,
		u.Idempotency,
		cmd.IdempotencyKey,
		hashRequest("nft_purchase", cmd.Buyer, cmd.TokenID, cmd.ExpectedPrice),
		now,
		defaultIdempotencyTTL(u.IdempotencyTTL),
		func(raw []byte) error { return json.Unmarshal(raw, &out) },
		func() ([]byte, error) {
			outcome, err := u.purchase(ctx, cmd, now, logger)
			if err != nil {
				return nil, err
			}
			return json.Marshal(outcome)
		},
	)
	if err != nil {
		return PurchaseResult{}, wrapUnexpected(err, domainerrors.ErrPurchaseFailed)
	}

	logger.Info("nft purchased",
		"event", "nft_purchased",
		"module", "marketplace/nft-service",
		"layer", "application",
		"token_id", out.Record.TokenID,
		"buyer", out.Record.Creator,
		"replayed", replayed,
	)
	return PurchaseResult{Receipt: out.Receipt, Record: out.Record, Replayed: replayed}, nil
}

func (u PurchaseUseCase) purchase(ctx context.Context, cmd PurchaseCommand, now time.Time, logger *slog.Logger) (purchaseOutcome, error) {
	tokenID := strings.TrimSpace(cmd.TokenID)
	record, found, err := u.Records.GetRecord(ctx, tokenID)
	if err != nil {
		return purchaseOutcome{}, fmt.Errorf("load record %s: %w", tokenID, err)
	}
	if !found {
		return purchaseOutcome{}, domainerrors.ErrTokenNotFound
	}
	if !record.Listed {
		logger.Warn("purchasing a record that is not listed",
			"event", "nft_purchase_unlisted",
			"module", "marketplace/nft-service",
			"layer", "application",
			"token_id", record.TokenID,
		)
	}

	record.Creator = strings.TrimSpace(cmd.Buyer)
	record.Listed = false
	record.UpdatedAt = now

	receipt, err := u.Receipts.NewReceipt(ctx)
	if err != nil {
		return purchaseOutcome{}, fmt.Errorf("generate receipt: %w", err)
	}
	eventID, err := u.IDs.NewID(ctx)
	if err != nil {
		return purchaseOutcome{}, fmt.Errorf("generate event id: %w", err)
	}
	event := ports.RecordEvent{
		EventID:    eventID,
		EventType:  purchasedEventType,
		TokenID:    record.TokenID,
		Title:      record.Title,
		Actor:      record.Creator,
		Price:      record.DisplayPrice(),
		OccurredAt: now,
	}

	if err := u.Records.UpdateRecordWithOutbox(ctx, record, event); err != nil {
		return purchaseOutcome{}, err
	}
	return purchaseOutcome{Receipt: receipt, Record: record}, nil
}

func (u PurchaseUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
