package ports

import (
	"context"
	"time"
)

const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

// NormalizeSort accepts both underscore and hyphen spellings; the original
// storefront sent "price-low"/"price-high".
func NormalizeSort(value string) string {
	switch value {
	case "", SortNewest:
		return SortNewest
	case SortOldest:
		return SortOldest
	case SortPriceLow, "price-low":
		return SortPriceLow
	case SortPriceHigh, "price-high":
		return SortPriceHigh
	default:
		return ""
	}
}

// Artwork is the discovery read model of a listed record.
type Artwork struct {
	TokenID      string
	Title        string
	Creator      string
	PriceAmount  float64
	DisplayPrice string
	ImageURL     string
	Description  string
	CreatedAt    time.Time
}

// Catalog supplies the currently listed records, in collection order.
// The marketplace store fulfils this behind a wiring adapter.
type Catalog interface {
	ListListed(ctx context.Context) ([]Artwork, error)
}
