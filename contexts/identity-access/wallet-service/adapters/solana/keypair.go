package solanaadapter

import (
	"context"

	"github.com/blocto/solana-go-sdk/types"
)

// KeypairGenerator mints throwaway ed25519 keypairs and hands back the
// base58 public key. The private key is discarded: the demo never signs,
// it only needs chain-shaped identities.
type KeypairGenerator struct{}

func (KeypairGenerator) NewAddress(_ context.Context) (string, error) {
	account := types.NewAccount()
	return account.PublicKey.ToBase58(), nil
}
