package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mintbay/contexts/marketplace/media-service/application"
	"mintbay/contexts/marketplace/media-service/ports"
	httptransport "mintbay/contexts/marketplace/media-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterUploadHandler(ctx context.Context, req httptransport.RegisterUploadRequest) (httptransport.AssetResponse, error) {
	asset, err := h.Service.RegisterUpload(ctx, application.RegisterUploadInput{
		FileName:    strings.TrimSpace(req.FileName),
		ContentType: strings.TrimSpace(req.ContentType),
		SizeBytes:   req.SizeBytes,
	})
	if err != nil {
		return httptransport.AssetResponse{}, err
	}
	return toAssetResponse(asset), nil
}

func (h Handler) GetAssetHandler(ctx context.Context, assetID string) (httptransport.AssetResponse, bool) {
	asset, found := h.Service.GetAsset(ctx, assetID)
	if !found {
		return httptransport.AssetResponse{}, false
	}
	return toAssetResponse(asset), true
}

func toAssetResponse(asset ports.Asset) httptransport.AssetResponse {
	resp := httptransport.AssetResponse{Status: "success"}
	resp.Data.AssetID = asset.AssetID
	resp.Data.FileName = asset.FileName
	resp.Data.ContentType = asset.ContentType
	resp.Data.SizeBytes = asset.SizeBytes
	resp.Data.URL = asset.URL
	resp.Data.UploadedAt = asset.UploadedAt.UTC().Format(time.RFC3339)
	return resp
}
