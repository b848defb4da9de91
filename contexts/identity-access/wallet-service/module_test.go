package walletservice_test

import (
	"context"
	"errors"
	"testing"

	walletservice "mintbay/contexts/identity-access/wallet-service"
	domainerrors "mintbay/contexts/identity-access/wallet-service/domain/errors"
	wallethttp "mintbay/contexts/identity-access/wallet-service/transport/http"
)

func TestConnectCreatesSigningSession(t *testing.T) {
	module := walletservice.NewInMemoryModule(nil)

	resp, err := module.Handler.ConnectHandler(context.Background(), wallethttp.ConnectRequest{})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if resp.Data.SessionID == "" {
		t.Fatalf("expected a session id")
	}
	if resp.Data.PublicKey == "" {
		t.Fatalf("expected a generated public key")
	}
	if !resp.Data.CanSign {
		t.Fatalf("default connect must yield a signing session")
	}

	session, found := module.Handler.ResolveSession(context.Background(), resp.Data.SessionID)
	if !found {
		t.Fatalf("session should resolve")
	}
	if session.PublicKey != resp.Data.PublicKey {
		t.Fatalf("resolved key %q does not match connect response %q", session.PublicKey, resp.Data.PublicKey)
	}
}

func TestConnectWatchOnly(t *testing.T) {
	module := walletservice.NewInMemoryModule(nil)

	resp, err := module.Handler.ConnectHandler(context.Background(), wallethttp.ConnectRequest{WatchOnly: true})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if resp.Data.CanSign {
		t.Fatalf("watch-only session must not sign")
	}
}

func TestConnectReusesProvidedPublicKey(t *testing.T) {
	module := walletservice.NewInMemoryModule(nil)

	resp, err := module.Handler.ConnectHandler(context.Background(), wallethttp.ConnectRequest{
		PublicKey: "FqLkYxA9z3Wv7p2QdGm5cR8sT1uB4nE6hJ0iK7yX2aZb",
	})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if resp.Data.PublicKey != "FqLkYxA9z3Wv7p2QdGm5cR8sT1uB4nE6hJ0iK7yX2aZb" {
		t.Fatalf("reconnect must keep the wallet identity, got %q", resp.Data.PublicKey)
	}
}

func TestDisconnectEndsSession(t *testing.T) {
	module := walletservice.NewInMemoryModule(nil)

	connected, err := module.Handler.ConnectHandler(context.Background(), wallethttp.ConnectRequest{})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	if _, err := module.Handler.DisconnectHandler(context.Background(), wallethttp.DisconnectRequest{
		SessionID: connected.Data.SessionID,
	}); err != nil {
		t.Fatalf("disconnect failed: %v", err)
	}

	if _, found := module.Handler.ResolveSession(context.Background(), connected.Data.SessionID); found {
		t.Fatalf("disconnected session must not resolve")
	}

	_, err = module.Handler.DisconnectHandler(context.Background(), wallethttp.DisconnectRequest{
		SessionID: connected.Data.SessionID,
	})
	if !errors.Is(err, domainerrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second disconnect, got %v", err)
	}
}

func TestResolveUnknownSession(t *testing.T) {
	module := walletservice.NewInMemoryModule(nil)

	if _, found := module.Handler.ResolveSession(context.Background(), "nope"); found {
		t.Fatalf("unknown session must not resolve")
	}
}
