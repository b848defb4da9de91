package queries

import (
	"context"
	"log/slog"

	application "mintbay/contexts/marketplace/nft-service/application"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	"mintbay/contexts/marketplace/nft-service/ports"
)

type ListListedUseCase struct {
	Records ports.RecordRepository
	Logger  *slog.Logger
}

// Execute returns every record available for purchase, in collection order.
// Sorting and filtering are the consumer's concern.
func (u ListListedUseCase) Execute(ctx context.Context) []entities.Record {
	records, err := u.Records.ListListed(ctx)
	if err != nil {
		application.ResolveLogger(u.Logger).Warn("listed records query failed",
			"event", "nft_list_listed_failed",
			"module", "marketplace/nft-service",
			"layer", "application",
			"error", err.Error(),
		)
		return nil
	}
	return records
}
