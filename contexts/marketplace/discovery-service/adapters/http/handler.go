package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"mintbay/contexts/marketplace/discovery-service/application"
	httptransport "mintbay/contexts/marketplace/discovery-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListArtworksHandler(ctx context.Context, input application.ListArtworksInput) (httptransport.ListArtworksResponse, error) {
	items, err := h.Service.ListArtworks(ctx, input)
	if err != nil {
		return httptransport.ListArtworksResponse{}, err
	}
	resp := httptransport.ListArtworksResponse{Status: "success", Data: make([]httptransport.ArtworkData, 0, len(items))}
	for _, item := range items {
		resp.Data = append(resp.Data, httptransport.ArtworkData{
			TokenID:     item.TokenID,
			Title:       item.Title,
			Creator:     item.Creator,
			Price:       item.DisplayPrice,
			PriceAmount: item.PriceAmount,
			Image:       item.ImageURL,
			Description: item.Description,
			CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}
