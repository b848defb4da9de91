package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "mintbay/contexts/marketplace/nft-service/application"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	domainerrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	"mintbay/contexts/marketplace/nft-service/ports"
)

const mintedEventType = "nft.minted"

type MintCommand struct {
	Owner          string
	Title          string
	Description    string
	PriceAmount    string
	ImageURL       string
	IdempotencyKey string
}

type MintResult struct {
	Record   entities.Record
	Replayed bool
}

type MintUseCase struct {
	Records        ports.RecordRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDs            ports.IDGenerator
	Tokens         ports.TokenIDGenerator
	Latency        time.Duration
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// Execute mints a new record: generate a mock token address, append the
// record unlisted, and queue an nft.minted event in the same write.
// Title/description/price validation is the caller's responsibility; the
// store itself only rejects a missing owner identity.
func (u MintUseCase) Execute(ctx context.Context, cmd MintCommand) (MintResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.Owner) == "" {
		return MintResult{}, domainerrors.ErrUnauthenticated
	}

	simulateLatency(u.Latency)

	now := u.now()
	var out entities.Record
	replayed, err := runIdempotent(
		ctx,
		u.Idempotency,
		cmd.IdempotencyKey,
		hashRequest("nft_mint", cmd.Owner, cmd.Title, cmd.Description, cmd.PriceAmount, cmd.ImageURL),
		now,
		defaultIdempotencyTTL(u.IdempotencyTTL),
		func(raw []byte) error { return json.Unmarshal(raw, &out) },
		func() ([]byte, error) {
			record, err := u.mint(ctx, cmd, now)
			if err != nil {
				return nil, err
			}
			return json.Marshal(record)
		},
	)
	if err != nil {
		return MintResult{}, wrapUnexpected(err, domainerrors.ErrMintFailed)
	}

	logger.Info("nft minted",
		"event", "nft_minted",
		"module", "marketplace/nft-service",
		"layer", "application",
		"token_id", out.TokenID,
		"owner", out.Creator,
		"replayed", replayed,
	)
	return MintResult{Record: out, Replayed: replayed}, nil
}

func (u MintUseCase) mint(ctx context.Context, cmd MintCommand, now time.Time) (entities.Record, error) {
	tokenID, err := u.Tokens.NewTokenID(ctx)
	if err != nil {
		return entities.Record{}, fmt.Errorf("generate token id: %w", err)
	}

	imageURL := strings.TrimSpace(cmd.ImageURL)
	if imageURL == "" {
		imageURL = entities.PlaceholderImageURL
	}

	record := entities.Record{
		TokenID:       tokenID,
		Title:         strings.TrimSpace(cmd.Title),
		Creator:       strings.TrimSpace(cmd.Owner),
		PriceAmount:   strings.TrimSpace(cmd.PriceAmount),
		PriceCurrency: entities.CurrencySOL,
		ImageURL:      imageURL,
		Description:   strings.TrimSpace(cmd.Description),
		Listed:        false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	eventID, err := u.IDs.NewID(ctx)
	if err != nil {
		return entities.Record{}, fmt.Errorf("generate event id: %w", err)
	}
	event := ports.RecordEvent{
		EventID:    eventID,
		EventType:  mintedEventType,
		TokenID:    record.TokenID,
		Title:      record.Title,
		Actor:      record.Creator,
		Price:      record.DisplayPrice(),
		OccurredAt: now,
	}

	if err := u.Records.CreateRecordWithOutbox(ctx, record, event); err != nil {
		return entities.Record{}, err
	}
	return record, nil
}

func (u MintUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

// wrapUnexpected folds unexpected internal faults into the operation's
// opaque failure sentinel while letting domain errors pass through.
func wrapUnexpected(err error, sentinel error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerrors.ErrUnauthenticated),
		errors.Is(err, domainerrors.ErrInvalidRequest),
		errors.Is(err, domainerrors.ErrTokenNotFound),
		errors.Is(err, domainerrors.ErrNotOwner),
		errors.Is(err, domainerrors.ErrIdempotencyConflict):
		return err
	default:
		return fmt.Errorf("%w: %v", sentinel, err)
	}
}
