package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "mintbay/contexts/marketplace/nft-service/application"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	"mintbay/contexts/marketplace/nft-service/ports"
)

type ListOwnedUseCase struct {
	Records ports.RecordRepository
	Clock   ports.Clock
	// DemoFallback substitutes two canned records when a wallet owns
	// nothing, so a fresh demo profile is never empty. Off by default;
	// this is scaffolding, not a contract.
	DemoFallback bool
	Logger       *slog.Logger
}

// Execute filters the collection by current owner, in collection order.
func (u ListOwnedUseCase) Execute(ctx context.Context, identity string) []entities.Record {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil
	}

	records, err := u.Records.ListByOwner(ctx, identity)
	if err != nil {
		application.ResolveLogger(u.Logger).Warn("owned records query failed",
			"event", "nft_list_owned_failed",
			"module", "marketplace/nft-service",
			"layer", "application",
			"identity", identity,
			"error", err.Error(),
		)
		return nil
	}
	if len(records) == 0 && u.DemoFallback {
		return u.cannedRecords(identity)
	}
	return records
}

func (u ListOwnedUseCase) cannedRecords(identity string) []entities.Record {
	now := time.Now().UTC()
	if u.Clock != nil {
		now = u.Clock.Now().UTC()
	}
	return []entities.Record{
		{
			TokenID:       "user-nft-1",
			Title:         "My First NFT",
			Creator:       identity,
			PriceAmount:   "1.5",
			PriceCurrency: entities.CurrencySOL,
			ImageURL:      entities.PlaceholderImageURL,
			Description:   "This is a demo NFT created on the Solana blockchain.",
			Listed:        false,
			CreatedAt:     now.Add(-2 * 24 * time.Hour),
			UpdatedAt:     now.Add(-2 * 24 * time.Hour),
		},
		{
			TokenID:       "user-nft-2",
			Title:         "Digital Masterpiece",
			Creator:       identity,
			PriceAmount:   "2.0",
			PriceCurrency: entities.CurrencySOL,
			ImageURL:      entities.PlaceholderImageURL,
			Description:   "A beautiful digital artwork created as an NFT.",
			Listed:        true,
			CreatedAt:     now.Add(-24 * time.Hour),
			UpdatedAt:     now.Add(-24 * time.Hour),
		},
	}
}
