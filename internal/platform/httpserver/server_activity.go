package httpserver

import (
	"net/http"
	"strconv"

	activityhttp "mintbay/contexts/marketplace/activity-service/transport/http"
)

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, activityhttp.ErrorResponse{
				Code:    "invalid_request",
				Message: "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}
	writeJSON(w, http.StatusOK, s.activity.Handler.ListActivityHandler(r.Context(), limit))
}
