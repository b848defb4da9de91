package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ConnectRequest struct {
	WatchOnly bool   `json:"watch_only,omitempty"`
	PublicKey string `json:"public_key,omitempty"`
}

type SessionResponse struct {
	Status string `json:"status"`
	Data   struct {
		SessionID   string `json:"session_id"`
		PublicKey   string `json:"public_key"`
		CanSign     bool   `json:"can_sign"`
		ConnectedAt string `json:"connected_at"`
	} `json:"data"`
}

type DisconnectRequest struct {
	SessionID string `json:"session_id"`
}

type GenericResponse struct {
	Status string `json:"status"`
}
