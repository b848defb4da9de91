package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mintbay/contexts/marketplace/discovery-service/application"
	domainerrors "mintbay/contexts/marketplace/discovery-service/domain/errors"
	"mintbay/contexts/marketplace/discovery-service/ports"
)

type stubCatalog struct {
	artworks []ports.Artwork
	err      error
}

func (c stubCatalog) ListListed(_ context.Context) ([]ports.Artwork, error) {
	return c.artworks, c.err
}

func testCatalog() stubCatalog {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return stubCatalog{artworks: []ports.Artwork{
		{TokenID: "1", Title: "Cheap Old", PriceAmount: 1.5, CreatedAt: base},
		{TokenID: "2", Title: "Pricey Mid", PriceAmount: 4.0, CreatedAt: base.Add(24 * time.Hour)},
		{TokenID: "3", Title: "Mid New", PriceAmount: 2.5, CreatedAt: base.Add(48 * time.Hour)},
	}}
}

func tokenIDs(artworks []ports.Artwork) []string {
	ids := make([]string, len(artworks))
	for i, artwork := range artworks {
		ids[i] = artwork.TokenID
	}
	return ids
}

func equal(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestListArtworksSortOrders(t *testing.T) {
	service := application.Service{Catalog: testCatalog()}

	cases := []struct {
		sort string
		want []string
	}{
		{ports.SortNewest, []string{"3", "2", "1"}},
		{ports.SortOldest, []string{"1", "2", "3"}},
		{ports.SortPriceLow, []string{"1", "3", "2"}},
		{ports.SortPriceHigh, []string{"2", "3", "1"}},
		// Hyphen spellings come from the original storefront UI.
		{"price-low", []string{"1", "3", "2"}},
	}
	for _, tc := range cases {
		got, err := service.ListArtworks(context.Background(), application.ListArtworksInput{Sort: tc.sort})
		if err != nil {
			t.Fatalf("sort %q failed: %v", tc.sort, err)
		}
		if !equal(tokenIDs(got), tc.want...) {
			t.Fatalf("sort %q: expected %v, got %v", tc.sort, tc.want, tokenIDs(got))
		}
	}
}

func TestListArtworksDefaultsToNewest(t *testing.T) {
	service := application.Service{Catalog: testCatalog()}

	got, err := service.ListArtworks(context.Background(), application.ListArtworksInput{})
	if err != nil {
		t.Fatalf("default sort failed: %v", err)
	}
	if !equal(tokenIDs(got), "3", "2", "1") {
		t.Fatalf("expected newest-first default, got %v", tokenIDs(got))
	}
}

func TestListArtworksPriceRangeInclusive(t *testing.T) {
	service := application.Service{Catalog: testCatalog()}

	got, err := service.ListArtworks(context.Background(), application.ListArtworksInput{
		Sort:     ports.SortOldest,
		MinPrice: 1.5,
		MaxPrice: 2.5,
	})
	if err != nil {
		t.Fatalf("range filter failed: %v", err)
	}
	if !equal(tokenIDs(got), "1", "3") {
		t.Fatalf("expected boundary prices included, got %v", tokenIDs(got))
	}
}

func TestListArtworksLimit(t *testing.T) {
	service := application.Service{Catalog: testCatalog()}

	got, err := service.ListArtworks(context.Background(), application.ListArtworksInput{Sort: ports.SortPriceHigh, Limit: 1})
	if err != nil {
		t.Fatalf("limit failed: %v", err)
	}
	if !equal(tokenIDs(got), "2") {
		t.Fatalf("expected single most expensive artwork, got %v", tokenIDs(got))
	}
}

func TestListArtworksInvalidInput(t *testing.T) {
	service := application.Service{Catalog: testCatalog()}

	if _, err := service.ListArtworks(context.Background(), application.ListArtworksInput{Sort: "bogus"}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unknown sort, got %v", err)
	}
	if _, err := service.ListArtworks(context.Background(), application.ListArtworksInput{MinPrice: 5, MaxPrice: 2}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for inverted range, got %v", err)
	}
}

func TestListArtworksCatalogFaultYieldsEmpty(t *testing.T) {
	service := application.Service{Catalog: stubCatalog{err: errors.New("backend down")}}

	got, err := service.ListArtworks(context.Background(), application.ListArtworksInput{})
	if err != nil {
		t.Fatalf("catalog fault must not surface: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result on fault, got %d", len(got))
	}
}
