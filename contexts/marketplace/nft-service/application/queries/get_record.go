package queries

import (
	"context"
	"log/slog"
	"strings"

	application "mintbay/contexts/marketplace/nft-service/application"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	"mintbay/contexts/marketplace/nft-service/ports"
)

type GetRecordUseCase struct {
	Records ports.RecordRepository
	Logger  *slog.Logger
}

// Execute is a pure lookup: a miss is an absent result, not an error, and
// internal faults degrade to absent as well (read paths never fail).
func (u GetRecordUseCase) Execute(ctx context.Context, tokenID string) (entities.Record, bool) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return entities.Record{}, false
	}

	record, found, err := u.Records.GetRecord(ctx, tokenID)
	if err != nil {
		application.ResolveLogger(u.Logger).Warn("record lookup failed",
			"event", "nft_get_record_failed",
			"module", "marketplace/nft-service",
			"layer", "application",
			"token_id", tokenID,
			"error", err.Error(),
		)
		return entities.Record{}, false
	}
	return record, found
}
