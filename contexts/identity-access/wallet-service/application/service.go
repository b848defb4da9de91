package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainerrors "mintbay/contexts/identity-access/wallet-service/domain/errors"
	"mintbay/contexts/identity-access/wallet-service/ports"
)

type ConnectInput struct {
	// WatchOnly sessions carry an identity but no signing capability.
	WatchOnly bool
	// PublicKey, when present, reconnects a known wallet instead of
	// generating a fresh keypair.
	PublicKey string
}

type Service struct {
	Sessions ports.SessionRepository
	Keys     ports.KeypairGenerator
	Clock    ports.Clock
	IDs      ports.IDGenerator
	Logger   *slog.Logger
}

func (s Service) Connect(ctx context.Context, input ConnectInput) (ports.Session, error) {
	publicKey := strings.TrimSpace(input.PublicKey)
	if publicKey == "" {
		generated, err := s.Keys.NewAddress(ctx)
		if err != nil {
			return ports.Session{}, fmt.Errorf("%w: %v", domainerrors.ErrConnectFailed, err)
		}
		publicKey = generated
	}

	sessionID, err := s.IDs.NewID(ctx)
	if err != nil {
		return ports.Session{}, fmt.Errorf("%w: %v", domainerrors.ErrConnectFailed, err)
	}
	session := ports.Session{
		SessionID:   sessionID,
		PublicKey:   publicKey,
		CanSign:     !input.WatchOnly,
		ConnectedAt: s.now(),
	}
	if err := s.Sessions.CreateSession(ctx, session); err != nil {
		return ports.Session{}, fmt.Errorf("%w: %v", domainerrors.ErrConnectFailed, err)
	}

	resolveLogger(s.Logger).Info("wallet connected",
		"event", "wallet_connected",
		"module", "identity-access/wallet-service",
		"layer", "application",
		"public_key", session.PublicKey,
		"can_sign", session.CanSign,
	)
	return session, nil
}

func (s Service) Disconnect(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domainerrors.ErrInvalidRequest
	}
	if err := s.Sessions.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("wallet disconnected",
		"event", "wallet_disconnected",
		"module", "identity-access/wallet-service",
		"layer", "application",
		"session_id", sessionID,
	)
	return nil
}

// Resolve maps a session id to its wallet. Absence is a plain miss, not an
// error; the HTTP edge turns a miss on a privileged route into 401.
func (s Service) Resolve(ctx context.Context, sessionID string) (ports.Session, bool) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ports.Session{}, false
	}
	session, found, err := s.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		resolveLogger(s.Logger).Warn("session lookup failed",
			"event", "wallet_session_lookup_failed",
			"module", "identity-access/wallet-service",
			"layer", "application",
			"session_id", sessionID,
			"error", err.Error(),
		)
		return ports.Session{}, false
	}
	return session, found
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
