package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	domainerrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	"mintbay/contexts/marketplace/nft-service/ports"
)

// Mutations accept an optional idempotency key: the demo UI never sends
// one, so an empty key executes directly. A present key gets
// replay/conflict semantics with a hashed request payload.
func runIdempotent(
	ctx context.Context,
	store ports.IdempotencyStore,
	key string,
	requestHash string,
	now time.Time,
	ttl time.Duration,
	decode func([]byte) error,
	exec func() ([]byte, error),
) (replayed bool, err error) {
	key = strings.TrimSpace(key)
	if key == "" || store == nil {
		payload, err := exec()
		if err != nil {
			return false, err
		}
		return false, decode(payload)
	}

	record, found, err := store.Get(ctx, key, now)
	if err != nil {
		return false, err
	}
	if found {
		if record.RequestHash != requestHash {
			return false, domainerrors.ErrIdempotencyConflict
		}
		return true, decode(record.Payload)
	}

	payload, err := exec()
	if err != nil {
		return false, err
	}
	if err := store.Put(ctx, ports.IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		Payload:     payload,
		ExpiresAt:   now.Add(ttl),
	}); err != nil {
		return false, err
	}
	return false, decode(payload)
}

func hashRequest(values ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(values, "|")))
	return hex.EncodeToString(sum[:])
}

func defaultIdempotencyTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 7 * 24 * time.Hour
	}
	return ttl
}

// simulateLatency mimics chain transaction time. The wait always runs to
// completion: mutations do not support caller cancellation mid-wait.
func simulateLatency(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
