package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	walleterrors "mintbay/contexts/identity-access/wallet-service/domain/errors"
	wallethttp "mintbay/contexts/identity-access/wallet-service/transport/http"
)

func writeWalletError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, wallethttp.ErrorResponse{Code: code, Message: message})
}

func writeWalletDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walleterrors.ErrInvalidRequest):
		writeWalletError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, walleterrors.ErrSessionNotFound):
		writeWalletError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeWalletError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleWalletConnect(w http.ResponseWriter, r *http.Request) {
	req := wallethttp.ConnectRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeWalletError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
			return
		}
	}

	resp, err := s.wallet.Handler.ConnectHandler(r.Context(), req)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleWalletDisconnect(w http.ResponseWriter, r *http.Request) {
	var req wallethttp.DisconnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWalletError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = strings.TrimSpace(r.Header.Get("X-Wallet-Session"))
	}

	resp, err := s.wallet.Handler.DisconnectHandler(r.Context(), req)
	if err != nil {
		writeWalletDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWalletSession(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.Header.Get("X-Wallet-Session"))
	if sessionID == "" {
		writeWalletError(w, http.StatusUnauthorized, "unauthenticated", "wallet not connected")
		return
	}
	session, found := s.wallet.Handler.ResolveSession(r.Context(), sessionID)
	if !found {
		writeWalletError(w, http.StatusUnauthorized, "unauthenticated", "wallet not connected")
		return
	}

	resp := wallethttp.SessionResponse{Status: "success"}
	resp.Data.SessionID = session.SessionID
	resp.Data.PublicKey = session.PublicKey
	resp.Data.CanSign = session.CanSign
	resp.Data.ConnectedAt = session.ConnectedAt.UTC().Format(time.RFC3339)
	writeJSON(w, http.StatusOK, resp)
}
