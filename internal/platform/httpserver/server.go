package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	walletservice "mintbay/contexts/identity-access/wallet-service"
	activityservice "mintbay/contexts/marketplace/activity-service"
	discoveryservice "mintbay/contexts/marketplace/discovery-service"
	mediaservice "mintbay/contexts/marketplace/media-service"
	nftservice "mintbay/contexts/marketplace/nft-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "mintbay/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	nft       nftservice.Module
	discovery discoveryservice.Module
	wallet    walletservice.Module
	media     mediaservice.Module
	activity  activityservice.Module
}

func New(
	nft nftservice.Module,
	discovery discoveryservice.Module,
	wallet walletservice.Module,
	media mediaservice.Module,
	activity activityservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		nft:       nft,
		discovery: discovery,
		wallet:    wallet,
		media:     media,
		activity:  activity,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for httptest scenarios.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/wallet/v1/connect", s.handleWalletConnect)
	s.mux.HandleFunc("POST /api/wallet/v1/disconnect", s.handleWalletDisconnect)
	s.mux.HandleFunc("GET /api/wallet/v1/session", s.handleWalletSession)

	s.mux.HandleFunc("POST /api/nfts/v1/mint", s.handleMint)
	s.mux.HandleFunc("GET /api/nfts/v1/tokens/{token_id}", s.handleGetNFT)
	s.mux.HandleFunc("POST /api/nfts/v1/tokens/{token_id}/list", s.handleListForSale)
	s.mux.HandleFunc("POST /api/nfts/v1/tokens/{token_id}/purchase", s.handlePurchase)
	s.mux.HandleFunc("GET /api/nfts/v1/owned", s.handleListOwned)
	s.mux.HandleFunc("GET /api/nfts/v1/listed", s.handleListListed)

	s.mux.HandleFunc("GET /api/discovery/v1/artworks", s.handleListArtworks)

	s.mux.HandleFunc("POST /api/media/v1/uploads", s.handleRegisterUpload)
	s.mux.HandleFunc("GET /api/media/v1/uploads/{asset_id}", s.handleGetAsset)

	s.mux.HandleFunc("GET /api/activity/v1/recent", s.handleListActivity)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
