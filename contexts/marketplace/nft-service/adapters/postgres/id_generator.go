package postgresadapter

import (
	"context"

	"github.com/google/uuid"

	"mintbay/contexts/marketplace/nft-service/domain/services"
)

// UUIDGenerator creates opaque UUIDv4 identifiers for events.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// MockAddressGenerator produces the chain-shaped identifiers the demo
// contract fixes: 44-character token addresses, 88-character receipts.
type MockAddressGenerator struct{}

func (MockAddressGenerator) NewTokenID(_ context.Context) (string, error) {
	return services.NewMockAddress(services.TokenAddressLength)
}

func (MockAddressGenerator) NewReceipt(_ context.Context) (string, error) {
	return services.NewMockAddress(services.ReceiptLength)
}
