package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	walletports "mintbay/contexts/identity-access/wallet-service/ports"
	nfterrors "mintbay/contexts/marketplace/nft-service/domain/errors"
	nfthttp "mintbay/contexts/marketplace/nft-service/transport/http"
)

func writeNFTError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, nfthttp.ErrorResponse{Code: code, Message: message})
}

func writeNFTDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, nfterrors.ErrInvalidRequest):
		writeNFTError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, nfterrors.ErrUnauthenticated):
		writeNFTError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, nfterrors.ErrTokenNotFound):
		writeNFTError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, nfterrors.ErrNotOwner):
		writeNFTError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, nfterrors.ErrTokenAlreadyExists),
		errors.Is(err, nfterrors.ErrIdempotencyConflict):
		writeNFTError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeNFTError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// requireWalletSession resolves the caller's wallet session from the
// X-Wallet-Session header. All privileged nft operations go through here;
// the store itself only sees the resolved public key.
func (s *Server) requireWalletSession(w http.ResponseWriter, r *http.Request) (walletports.Session, bool) {
	sessionID := strings.TrimSpace(r.Header.Get("X-Wallet-Session"))
	if sessionID == "" {
		writeNFTError(w, http.StatusUnauthorized, "unauthenticated", "wallet not connected")
		return walletports.Session{}, false
	}
	session, found := s.wallet.Handler.ResolveSession(r.Context(), sessionID)
	if !found {
		writeNFTError(w, http.StatusUnauthorized, "unauthenticated", "wallet not connected")
		return walletports.Session{}, false
	}
	return session, true
}

func (s *Server) requireSigningSession(w http.ResponseWriter, r *http.Request) (walletports.Session, bool) {
	session, ok := s.requireWalletSession(w, r)
	if !ok {
		return walletports.Session{}, false
	}
	if !session.CanSign {
		writeNFTError(w, http.StatusForbidden, "forbidden", "watch-only session cannot sign transactions")
		return walletports.Session{}, false
	}
	return session, true
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("Idempotency-Key"))
}

func (s *Server) handleMint(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSigningSession(w, r)
	if !ok {
		return
	}

	var req nfthttp.MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeNFTError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	resp, err := s.nft.Handler.MintHandler(r.Context(), idempotencyKey(r), session.PublicKey, req)
	if err != nil {
		writeNFTDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListForSale(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireWalletSession(w, r)
	if !ok {
		return
	}

	var req nfthttp.ListForSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeNFTError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	resp, err := s.nft.Handler.ListForSaleHandler(r.Context(), idempotencyKey(r), session.PublicKey, r.PathValue("token_id"), req)
	if err != nil {
		writeNFTDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSigningSession(w, r)
	if !ok {
		return
	}

	req := nfthttp.PurchaseRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeNFTError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
			return
		}
	}

	resp, err := s.nft.Handler.PurchaseHandler(r.Context(), idempotencyKey(r), session.PublicKey, r.PathValue("token_id"), req)
	if err != nil {
		writeNFTDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetNFT(w http.ResponseWriter, r *http.Request) {
	resp, found := s.nft.Handler.GetRecordHandler(r.Context(), r.PathValue("token_id"))
	if !found {
		writeNFTError(w, http.StatusNotFound, "not_found", "token not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListOwned(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireWalletSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.nft.Handler.ListOwnedHandler(r.Context(), session.PublicKey))
}

func (s *Server) handleListListed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.nft.Handler.ListListedHandler(r.Context()))
}
