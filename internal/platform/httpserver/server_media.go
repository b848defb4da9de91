package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	mediaerrors "mintbay/contexts/marketplace/media-service/domain/errors"
	mediahttp "mintbay/contexts/marketplace/media-service/transport/http"
)

func writeMediaError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, mediahttp.ErrorResponse{Code: code, Message: message})
}

func writeMediaDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mediaerrors.ErrInvalidRequest):
		writeMediaError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, mediaerrors.ErrNotAnImage):
		writeMediaError(w, http.StatusUnsupportedMediaType, "not_an_image", err.Error())
	case errors.Is(err, mediaerrors.ErrFileTooLarge):
		writeMediaError(w, http.StatusRequestEntityTooLarge, "file_too_large", err.Error())
	case errors.Is(err, mediaerrors.ErrAssetNotFound):
		writeMediaError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeMediaError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRegisterUpload(w http.ResponseWriter, r *http.Request) {
	var req mediahttp.RegisterUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMediaError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	resp, err := s.media.Handler.RegisterUploadHandler(r.Context(), req)
	if err != nil {
		writeMediaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	resp, found := s.media.Handler.GetAssetHandler(r.Context(), r.PathValue("asset_id"))
	if !found {
		writeMediaError(w, http.StatusNotFound, "not_found", "asset not found")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
