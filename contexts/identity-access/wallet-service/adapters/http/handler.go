package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mintbay/contexts/identity-access/wallet-service/application"
	"mintbay/contexts/identity-access/wallet-service/ports"
	httptransport "mintbay/contexts/identity-access/wallet-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ConnectHandler(ctx context.Context, req httptransport.ConnectRequest) (httptransport.SessionResponse, error) {
	session, err := h.Service.Connect(ctx, application.ConnectInput{
		WatchOnly: req.WatchOnly,
		PublicKey: strings.TrimSpace(req.PublicKey),
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (h Handler) DisconnectHandler(ctx context.Context, req httptransport.DisconnectRequest) (httptransport.GenericResponse, error) {
	if err := h.Service.Disconnect(ctx, strings.TrimSpace(req.SessionID)); err != nil {
		return httptransport.GenericResponse{}, err
	}
	return httptransport.GenericResponse{Status: "success"}, nil
}

func (h Handler) ResolveSession(ctx context.Context, sessionID string) (ports.Session, bool) {
	return h.Service.Resolve(ctx, sessionID)
}

func toSessionResponse(session ports.Session) httptransport.SessionResponse {
	resp := httptransport.SessionResponse{Status: "success"}
	resp.Data.SessionID = session.SessionID
	resp.Data.PublicKey = session.PublicKey
	resp.Data.CanSign = session.CanSign
	resp.Data.ConnectedAt = session.ConnectedAt.UTC().Format(time.RFC3339)
	return resp
}
