package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"mintbay/contexts/marketplace/discovery-service/application"
	discoveryerrors "mintbay/contexts/marketplace/discovery-service/domain/errors"
	discoveryhttp "mintbay/contexts/marketplace/discovery-service/transport/http"
)

func writeDiscoveryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, discoveryhttp.ErrorResponse{Code: code, Message: message})
}

func (s *Server) handleListArtworks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	input := application.ListArtworksInput{Sort: query.Get("sort")}

	var parseErr bool
	input.MinPrice, parseErr = parsePriceParam(query.Get("min_price"))
	if parseErr {
		writeDiscoveryError(w, http.StatusBadRequest, "invalid_request", "min_price must be a number")
		return
	}
	input.MaxPrice, parseErr = parsePriceParam(query.Get("max_price"))
	if parseErr {
		writeDiscoveryError(w, http.StatusBadRequest, "invalid_request", "max_price must be a number")
		return
	}
	if limitRaw := query.Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil || limit < 0 {
			writeDiscoveryError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
			return
		}
		input.Limit = limit
	}

	resp, err := s.discovery.Handler.ListArtworksHandler(r.Context(), input)
	if err != nil {
		if errors.Is(err, discoveryerrors.ErrInvalidRequest) {
			writeDiscoveryError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		writeDiscoveryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parsePriceParam(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, true
	}
	return value, false
}
