package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "mintbay/contexts/marketplace/activity-service/domain/errors"
	"mintbay/contexts/marketplace/activity-service/ports"
)

const defaultListLimit = 20

type Service struct {
	Feed   ports.FeedStore
	Logger *slog.Logger
}

func (s Service) Record(ctx context.Context, entry ports.Entry) error {
	if strings.TrimSpace(entry.EntryID) == "" ||
		strings.TrimSpace(entry.TokenID) == "" ||
		!ports.IsValidKind(entry.Kind) {
		return domainerrors.ErrInvalidEntry
	}
	if err := s.Feed.Append(ctx, entry); err != nil {
		return err
	}
	ResolveLogger(s.Logger).Debug("activity recorded",
		"event", "activity_recorded",
		"module", "marketplace/activity-service",
		"layer", "application",
		"kind", entry.Kind,
		"token_id", entry.TokenID,
	)
	return nil
}

// ListRecent is lenient like every read path here: a store fault comes back
// as an empty feed.
func (s Service) ListRecent(ctx context.Context, limit int) []ports.Entry {
	if limit <= 0 {
		limit = defaultListLimit
	}
	entries, err := s.Feed.ListRecent(ctx, limit)
	if err != nil {
		ResolveLogger(s.Logger).Warn("feed read failed",
			"event", "activity_feed_read_failed",
			"module", "marketplace/activity-service",
			"layer", "application",
			"error", err.Error(),
		)
		return nil
	}
	return entries
}

func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
