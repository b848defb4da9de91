package ports

import (
	"context"
	"time"
)

// Session is a connected wallet: the public key is the identity every
// ownership check keys on, and CanSign gates the operations that would
// require a signature on a real chain (mint, purchase).
type Session struct {
	SessionID   string
	PublicKey   string
	CanSign     bool
	ConnectedAt time.Time
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, sessionID string) (Session, bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// KeypairGenerator produces a fresh wallet address. The runtime adapter
// generates a real ed25519 keypair and returns its base58 public key; no
// chain is ever contacted.
type KeypairGenerator interface {
	NewAddress(ctx context.Context) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
