package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"mintbay/contexts/marketplace/activity-service/application"
	httptransport "mintbay/contexts/marketplace/activity-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListActivityHandler(ctx context.Context, limit int) httptransport.ListActivityResponse {
	entries := h.Service.ListRecent(ctx, limit)
	resp := httptransport.ListActivityResponse{Status: "success", Data: make([]httptransport.ActivityData, 0, len(entries))}
	for _, entry := range entries {
		resp.Data = append(resp.Data, httptransport.ActivityData{
			EntryID:    entry.EntryID,
			Kind:       entry.Kind,
			TokenID:    entry.TokenID,
			Title:      entry.Title,
			Actor:      entry.Actor,
			Price:      entry.Price,
			OccurredAt: entry.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
