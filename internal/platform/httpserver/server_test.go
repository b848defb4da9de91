package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	walletservice "mintbay/contexts/identity-access/wallet-service"
	activityservice "mintbay/contexts/marketplace/activity-service"
	discoveryservice "mintbay/contexts/marketplace/discovery-service"
	discoveryports "mintbay/contexts/marketplace/discovery-service/ports"
	mediaservice "mintbay/contexts/marketplace/media-service"
	nftservice "mintbay/contexts/marketplace/nft-service"
	nftmemory "mintbay/contexts/marketplace/nft-service/adapters/memory"
	nftworkers "mintbay/contexts/marketplace/nft-service/application/workers"
	"mintbay/contexts/marketplace/nft-service/domain/services"
	nftports "mintbay/contexts/marketplace/nft-service/ports"
	"mintbay/internal/platform/messaging"
)

type testEnv struct {
	server *Server
	relay  nftworkers.OutboxRelay
}

type testCatalog struct {
	nft nftservice.Module
}

func (c testCatalog) ListListed(ctx context.Context) ([]discoveryports.Artwork, error) {
	records := c.nft.Handler.ListListed.Execute(ctx)
	artworks := make([]discoveryports.Artwork, 0, len(records))
	for _, record := range records {
		artworks = append(artworks, discoveryports.Artwork{
			TokenID:      record.TokenID,
			Title:        record.Title,
			Creator:      record.Creator,
			DisplayPrice: record.DisplayPrice(),
			CreatedAt:    record.CreatedAt,
		})
	}
	return artworks, nil
}

// newTestEnv wires the full memory-mode composition with zero simulated
// latency. The outbox relay is driven manually from tests.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	nftModule := nftservice.NewInMemoryModule(nftmemory.DemoCatalog(time.Now().UTC()), nftports.Latency{}, false, nil)
	walletModule := walletservice.NewInMemoryModule(nil)
	mediaModule := mediaservice.NewInMemoryModule(nil)
	activityModule := activityservice.NewInMemoryModule(100, nil)
	discoveryModule := discoveryservice.NewModule(discoveryservice.Dependencies{
		Catalog: testCatalog{nft: nftModule},
	})

	bus := messaging.NewBus(nil)
	consumer := activityModule.NewConsumer(bus, nil)
	if err := consumer.Start(context.Background()); err != nil {
		t.Fatalf("consumer start failed: %v", err)
	}

	return testEnv{
		server: New(nftModule, discoveryModule, walletModule, mediaModule, activityModule, nil, ""),
		relay: nftworkers.OutboxRelay{
			Outbox:    nftModule.Store,
			Publisher: bus,
			Clock:     nftModule.Store,
		},
	}
}

func (e testEnv) do(t *testing.T, method string, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", recorder.Body.String(), err)
	}
}

func (e testEnv) connect(t *testing.T, watchOnly bool) (sessionID string, publicKey string) {
	t.Helper()

	recorder := e.do(t, http.MethodPost, "/api/wallet/v1/connect", map[string]any{"watch_only": watchOnly}, nil)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("connect returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Data struct {
			SessionID string `json:"session_id"`
			PublicKey string `json:"public_key"`
		} `json:"data"`
	}
	decodeBody(t, recorder, &resp)
	return resp.Data.SessionID, resp.Data.PublicKey
}

func TestMintRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/api/nfts/v1/mint", map[string]any{
		"title": "x", "description": "y", "price": "1",
	}, nil)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", recorder.Code)
	}
}

func TestWatchOnlySessionCannotMint(t *testing.T) {
	env := newTestEnv(t)
	sessionID, _ := env.connect(t, true)

	recorder := env.do(t, http.MethodPost, "/api/nfts/v1/mint", map[string]any{
		"title": "x", "description": "y", "price": "1",
	}, map[string]string{"X-Wallet-Session": sessionID})
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for watch-only session, got %d", recorder.Code)
	}
}

func TestMintListPurchaseFlow(t *testing.T) {
	env := newTestEnv(t)
	aliceSession, alicePublicKey := env.connect(t, false)

	recorder := env.do(t, http.MethodPost, "/api/nfts/v1/mint", map[string]any{
		"title":       "Test Artwork",
		"description": "scenario flow",
		"price":       "3.5",
	}, map[string]string{"X-Wallet-Session": aliceSession})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("mint returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var minted struct {
		Data struct {
			TokenID string `json:"token_id"`
			Creator string `json:"creator"`
			Price   string `json:"price"`
			Listed  bool   `json:"listed"`
		} `json:"data"`
	}
	decodeBody(t, recorder, &minted)
	if len(minted.Data.TokenID) != services.TokenAddressLength {
		t.Fatalf("unexpected token id %q", minted.Data.TokenID)
	}
	if minted.Data.Creator != alicePublicKey || minted.Data.Listed {
		t.Fatalf("unexpected minted record: %+v", minted.Data)
	}
	if minted.Data.Price != "3.5 SOL" {
		t.Fatalf("unexpected display price %q", minted.Data.Price)
	}

	recorder = env.do(t, http.MethodPost, "/api/nfts/v1/tokens/"+minted.Data.TokenID+"/list", map[string]any{
		"price": "5",
	}, map[string]string{"X-Wallet-Session": aliceSession})
	if recorder.Code != http.StatusOK {
		t.Fatalf("list for sale returned %d: %s", recorder.Code, recorder.Body.String())
	}

	bobSession, bobPublicKey := env.connect(t, false)
	recorder = env.do(t, http.MethodPost, "/api/nfts/v1/tokens/"+minted.Data.TokenID+"/purchase", nil,
		map[string]string{"X-Wallet-Session": bobSession})
	if recorder.Code != http.StatusOK {
		t.Fatalf("purchase returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var purchased struct {
		Data struct {
			Receipt string `json:"receipt"`
			Owner   string `json:"owner"`
		} `json:"data"`
	}
	decodeBody(t, recorder, &purchased)
	if len(purchased.Data.Receipt) != services.ReceiptLength {
		t.Fatalf("unexpected receipt length %d", len(purchased.Data.Receipt))
	}
	if purchased.Data.Owner != bobPublicKey {
		t.Fatalf("expected new owner %q, got %q", bobPublicKey, purchased.Data.Owner)
	}

	recorder = env.do(t, http.MethodGet, "/api/nfts/v1/owned", nil,
		map[string]string{"X-Wallet-Session": bobSession})
	if recorder.Code != http.StatusOK {
		t.Fatalf("owned returned %d", recorder.Code)
	}
	var owned struct {
		Data []struct {
			TokenID string `json:"token_id"`
		} `json:"data"`
	}
	decodeBody(t, recorder, &owned)
	if len(owned.Data) != 1 || owned.Data[0].TokenID != minted.Data.TokenID {
		t.Fatalf("unexpected owned set: %+v", owned.Data)
	}
}

func TestGetUnknownTokenReturns404(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/api/nfts/v1/tokens/missing", nil, nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestDiscoveryEndpoint(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodGet, "/api/discovery/v1/artworks?sort=oldest&limit=2", nil, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("discovery returned %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Data []struct {
			TokenID string `json:"token_id"`
		} `json:"data"`
	}
	decodeBody(t, recorder, &resp)
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(resp.Data))
	}
	// Demo catalog seeds ids 1..6 oldest-first.
	if resp.Data[0].TokenID != "1" || resp.Data[1].TokenID != "2" {
		t.Fatalf("unexpected order: %+v", resp.Data)
	}

	recorder = env.do(t, http.MethodGet, "/api/discovery/v1/artworks?sort=sideways", nil, nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sort, got %d", recorder.Code)
	}
}

func TestMediaUploadValidation(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.do(t, http.MethodPost, "/api/media/v1/uploads", map[string]any{
		"file_name": "doc.pdf", "content_type": "application/pdf", "size_bytes": 100,
	}, nil)
	if recorder.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415 for non-image, got %d", recorder.Code)
	}

	recorder = env.do(t, http.MethodPost, "/api/media/v1/uploads", map[string]any{
		"file_name": "big.png", "content_type": "image/png", "size_bytes": 6 * 1024 * 1024,
	}, nil)
	if recorder.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for oversize image, got %d", recorder.Code)
	}

	recorder = env.do(t, http.MethodPost, "/api/media/v1/uploads", map[string]any{
		"file_name": "ok.png", "content_type": "image/png", "size_bytes": 1024,
	}, nil)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201 for valid upload, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var asset struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	decodeBody(t, recorder, &asset)
	if !strings.HasSuffix(asset.Data.URL, "/ok.png") {
		t.Fatalf("unexpected asset url %q", asset.Data.URL)
	}
}

func TestActivityFeedAfterRelay(t *testing.T) {
	env := newTestEnv(t)
	sessionID, _ := env.connect(t, false)

	recorder := env.do(t, http.MethodPost, "/api/nfts/v1/mint", map[string]any{
		"title": "Feed Item", "description": "shows up in activity", "price": "1",
	}, map[string]string{"X-Wallet-Session": sessionID})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("mint returned %d", recorder.Code)
	}

	if err := env.relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	// The bus delivers to the consumer goroutine asynchronously.
	deadline := time.Now().Add(2 * time.Second)
	for {
		recorder = env.do(t, http.MethodGet, "/api/activity/v1/recent", nil, nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("activity returned %d", recorder.Code)
		}
		var feed struct {
			Data []struct {
				Kind  string `json:"kind"`
				Title string `json:"title"`
			} `json:"data"`
		}
		decodeBody(t, recorder, &feed)
		if len(feed.Data) > 0 {
			if feed.Data[0].Kind != "minted" || feed.Data[0].Title != "Feed Item" {
				t.Fatalf("unexpected feed head: %+v", feed.Data[0])
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("activity feed never received the mint event")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
