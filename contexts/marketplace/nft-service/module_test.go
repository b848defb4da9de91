package nftservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	nftservice "mintbay/contexts/marketplace/nft-service"
	"mintbay/contexts/marketplace/nft-service/application/commands"
	"mintbay/contexts/marketplace/nft-service/domain/entities"
	domainerrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	"mintbay/contexts/marketplace/nft-service/domain/services"
	"mintbay/contexts/marketplace/nft-service/ports"
)

func newTestModule(seed []entities.Record) nftservice.Module {
	return nftservice.NewInMemoryModule(seed, ports.Latency{}, false, nil)
}

func seedRecord(tokenID string, owner string, listed bool) entities.Record {
	now := time.Now().UTC().Add(-time.Hour)
	return entities.Record{
		TokenID:       tokenID,
		Title:         "Seed " + tokenID,
		Creator:       owner,
		PriceAmount:   "2.5",
		PriceCurrency: entities.CurrencySOL,
		ImageURL:      "/art/" + tokenID + ".png",
		Description:   "seeded record",
		Listed:        listed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestMintCreatesUnlistedRecord(t *testing.T) {
	module := newTestModule(nil)

	result, err := module.Handler.Mint.Execute(context.Background(), commands.MintCommand{
		Owner:       "alice",
		Title:       "Sunrise",
		Description: "first light",
		PriceAmount: "1.25",
	})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if len(result.Record.TokenID) != services.TokenAddressLength {
		t.Fatalf("expected %d-char token id, got %d", services.TokenAddressLength, len(result.Record.TokenID))
	}
	if result.Record.Listed {
		t.Fatalf("freshly minted record must not be listed")
	}
	if result.Record.ImageURL != entities.PlaceholderImageURL {
		t.Fatalf("expected placeholder image, got %q", result.Record.ImageURL)
	}
	if result.Record.DisplayPrice() != "1.25 SOL" {
		t.Fatalf("unexpected display price %q", result.Record.DisplayPrice())
	}

	fetched, found := module.Handler.GetRecord.Execute(context.Background(), result.Record.TokenID)
	if !found {
		t.Fatalf("minted record should be retrievable")
	}
	if fetched.Creator != "alice" {
		t.Fatalf("expected creator alice, got %q", fetched.Creator)
	}
}

func TestMintGeneratesUniqueTokenIDs(t *testing.T) {
	module := newTestModule(nil)
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		result, err := module.Handler.Mint.Execute(context.Background(), commands.MintCommand{
			Owner:       "alice",
			Title:       "Edition",
			Description: "one of many",
			PriceAmount: "0.5",
		})
		if err != nil {
			t.Fatalf("mint %d failed: %v", i, err)
		}
		if seen[result.Record.TokenID] {
			t.Fatalf("duplicate token id %q", result.Record.TokenID)
		}
		seen[result.Record.TokenID] = true
	}
}

func TestMintRequiresOwner(t *testing.T) {
	module := newTestModule(nil)

	_, err := module.Handler.Mint.Execute(context.Background(), commands.MintCommand{
		Title:       "Orphan",
		Description: "nobody's",
		PriceAmount: "1",
	})
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestListForSale(t *testing.T) {
	module := newTestModule([]entities.Record{seedRecord("tok-1", "alice", false)})

	result, err := module.Handler.ListForSale.Execute(context.Background(), commands.ListForSaleCommand{
		Owner:       "alice",
		TokenID:     "tok-1",
		PriceAmount: "9.9",
	})
	if err != nil {
		t.Fatalf("list for sale failed: %v", err)
	}
	if !result.Record.Listed {
		t.Fatalf("record should be listed")
	}
	if result.Record.PriceAmount != "9.9" {
		t.Fatalf("expected updated price 9.9, got %q", result.Record.PriceAmount)
	}
}

func TestListForSaleRejectsNonOwner(t *testing.T) {
	module := newTestModule([]entities.Record{seedRecord("tok-1", "alice", false)})

	_, err := module.Handler.ListForSale.Execute(context.Background(), commands.ListForSaleCommand{
		Owner:       "mallory",
		TokenID:     "tok-1",
		PriceAmount: "9.9",
	})
	if !errors.Is(err, domainerrors.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	record, found := module.Handler.GetRecord.Execute(context.Background(), "tok-1")
	if !found || record.Listed {
		t.Fatalf("failed listing must leave the record unchanged")
	}
}

func TestListForSaleUnknownToken(t *testing.T) {
	module := newTestModule(nil)

	_, err := module.Handler.ListForSale.Execute(context.Background(), commands.ListForSaleCommand{
		Owner:       "alice",
		TokenID:     "missing",
		PriceAmount: "1",
	})
	if !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestPurchaseTransfersOwnership(t *testing.T) {
	module := newTestModule([]entities.Record{seedRecord("tok-1", "alice", true)})

	result, err := module.Handler.Purchase.Execute(context.Background(), commands.PurchaseCommand{
		Buyer:   "bob",
		TokenID: "tok-1",
	})
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if len(result.Receipt) != services.ReceiptLength {
		t.Fatalf("expected %d-char receipt, got %d", services.ReceiptLength, len(result.Receipt))
	}
	if result.Record.Creator != "bob" {
		t.Fatalf("expected new owner bob, got %q", result.Record.Creator)
	}
	if result.Record.Listed {
		t.Fatalf("purchased record must be delisted")
	}
}

// The store intentionally does not reject purchases of unlisted records;
// it transfers and logs a warning.
func TestPurchaseUnlistedStillTransfers(t *testing.T) {
	module := newTestModule([]entities.Record{seedRecord("tok-1", "alice", false)})

	result, err := module.Handler.Purchase.Execute(context.Background(), commands.PurchaseCommand{
		Buyer:   "bob",
		TokenID: "tok-1",
	})
	if err != nil {
		t.Fatalf("purchase of unlisted record should still succeed: %v", err)
	}
	if result.Record.Creator != "bob" {
		t.Fatalf("expected transfer to bob, got %q", result.Record.Creator)
	}
}

func TestPurchaseUnknownToken(t *testing.T) {
	module := newTestModule(nil)

	_, err := module.Handler.Purchase.Execute(context.Background(), commands.PurchaseCommand{
		Buyer:   "bob",
		TokenID: "missing",
	})
	if !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestPurchaseIdempotencyReplay(t *testing.T) {
	module := newTestModule([]entities.Record{seedRecord("tok-1", "alice", true)})

	first, err := module.Handler.Purchase.Execute(context.Background(), commands.PurchaseCommand{
		Buyer:          "bob",
		TokenID:        "tok-1",
		IdempotencyKey: "idem-1",
	})
	if err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}

	second, err := module.Handler.Purchase.Execute(context.Background(), commands.PurchaseCommand{
		Buyer:          "bob",
		TokenID:        "tok-1",
		IdempotencyKey: "idem-1",
	})
	if err != nil {
		t.Fatalf("replayed purchase failed: %v", err)
	}
	if !second.Replayed {
		t.Fatalf("expected replayed result")
	}
	if second.Receipt != first.Receipt {
		t.Fatalf("replay must return the original receipt")
	}
}

func TestIdempotencyKeyReuseWithDifferentRequestConflicts(t *testing.T) {
	module := newTestModule([]entities.Record{
		seedRecord("tok-1", "alice", true),
		seedRecord("tok-2", "alice", true),
	})

	if _, err := module.Handler.Purchase.Execute(context.Background(), commands.PurchaseCommand{
		Buyer:          "bob",
		TokenID:        "tok-1",
		IdempotencyKey: "idem-1",
	}); err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}

	_, err := module.Handler.Purchase.Execute(context.Background(), commands.PurchaseCommand{
		Buyer:          "bob",
		TokenID:        "tok-2",
		IdempotencyKey: "idem-1",
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected ErrIdempotencyConflict, got %v", err)
	}
}

func TestListListedReturnsOnlyListedInOrder(t *testing.T) {
	module := newTestModule([]entities.Record{
		seedRecord("tok-1", "alice", true),
		seedRecord("tok-2", "bob", false),
		seedRecord("tok-3", "carol", true),
	})

	listed := module.Handler.ListListed.Execute(context.Background())
	if len(listed) != 2 {
		t.Fatalf("expected 2 listed records, got %d", len(listed))
	}
	if listed[0].TokenID != "tok-1" || listed[1].TokenID != "tok-3" {
		t.Fatalf("expected collection order tok-1, tok-3; got %s, %s", listed[0].TokenID, listed[1].TokenID)
	}
}

func TestListOwned(t *testing.T) {
	module := newTestModule([]entities.Record{
		seedRecord("tok-1", "alice", true),
		seedRecord("tok-2", "bob", false),
	})

	owned := module.Handler.ListOwned.Execute(context.Background(), "alice")
	if len(owned) != 1 || owned[0].TokenID != "tok-1" {
		t.Fatalf("unexpected owned set: %+v", owned)
	}
}

func TestListOwnedDemoFallback(t *testing.T) {
	module := nftservice.NewInMemoryModule(nil, ports.Latency{}, true, nil)

	owned := module.Handler.ListOwned.Execute(context.Background(), "alice")
	if len(owned) != 2 {
		t.Fatalf("expected canned 2-record fallback, got %d", len(owned))
	}
	if owned[0].TokenID != "user-nft-1" || owned[1].TokenID != "user-nft-2" {
		t.Fatalf("unexpected fallback tokens: %s, %s", owned[0].TokenID, owned[1].TokenID)
	}

	// Owning a real record switches the fallback off.
	if _, err := module.Handler.Mint.Execute(context.Background(), commands.MintCommand{
		Owner:       "alice",
		Title:       "Real",
		Description: "actually owned",
		PriceAmount: "1",
	}); err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	owned = module.Handler.ListOwned.Execute(context.Background(), "alice")
	if len(owned) != 1 || owned[0].Title != "Real" {
		t.Fatalf("expected the real record only, got %+v", owned)
	}
}
