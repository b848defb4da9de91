package application

import (
	"context"
	"log/slog"
	"sort"

	domainerrors "mintbay/contexts/marketplace/discovery-service/domain/errors"
	"mintbay/contexts/marketplace/discovery-service/ports"
)

type ListArtworksInput struct {
	Sort     string
	MinPrice float64
	MaxPrice float64
	Limit    int
}

type Service struct {
	Catalog ports.Catalog
	Logger  *slog.Logger
}

// ListArtworks applies the browse transforms the original storefront ran
// client-side: inclusive price-range filter first, then a stable sort.
// The read path is lenient: a catalog fault yields an empty result.
func (s Service) ListArtworks(ctx context.Context, input ListArtworksInput) ([]ports.Artwork, error) {
	sortKey := ports.NormalizeSort(input.Sort)
	if sortKey == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	if input.MaxPrice > 0 && input.MinPrice > input.MaxPrice {
		return nil, domainerrors.ErrInvalidRequest
	}

	items, err := s.Catalog.ListListed(ctx)
	if err != nil {
		resolveLogger(s.Logger).Warn("catalog read failed",
			"event", "discovery_catalog_read_failed",
			"module", "marketplace/discovery-service",
			"layer", "application",
			"error", err.Error(),
		)
		return []ports.Artwork{}, nil
	}

	filtered := make([]ports.Artwork, 0, len(items))
	for _, item := range items {
		if item.PriceAmount < input.MinPrice {
			continue
		}
		if input.MaxPrice > 0 && item.PriceAmount > input.MaxPrice {
			continue
		}
		filtered = append(filtered, item)
	}

	switch sortKey {
	case ports.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case ports.SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case ports.SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceAmount < filtered[j].PriceAmount
		})
	case ports.SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PriceAmount > filtered[j].PriceAmount
		})
	}

	if input.Limit > 0 && len(filtered) > input.Limit {
		filtered = filtered[:input.Limit]
	}
	return filtered, nil
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
