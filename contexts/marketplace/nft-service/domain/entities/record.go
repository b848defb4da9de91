package entities

import "time"

const (
	// CurrencySOL is the only currency the demo marketplace trades in.
	CurrencySOL = "SOL"

	// PlaceholderImageURL is substituted when a mint carries no artwork.
	PlaceholderImageURL = "/placeholder.svg?height=300&width=300"
)

// Record is a single NFT's mutable marketplace state.
// Creator doubles as the current owner: purchase rewrites it, there is no
// separate owner field. Records are never deleted; list and purchase mutate
// the matched record in place.
type Record struct {
	TokenID       string
	Title         string
	Creator       string
	PriceAmount   string
	PriceCurrency string
	ImageURL      string
	Description   string
	Listed        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r Record) OwnedBy(identity string) bool {
	return r.Creator == identity
}

// DisplayPrice renders the price the way the storefront shows it ("2.5 SOL").
// Formatting lives here so the stored amount stays a plain decimal.
func (r Record) DisplayPrice() string {
	currency := r.PriceCurrency
	if currency == "" {
		currency = CurrencySOL
	}
	return r.PriceAmount + " " + currency
}
