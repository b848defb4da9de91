package application

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	domainerrors "mintbay/contexts/marketplace/media-service/domain/errors"
	"mintbay/contexts/marketplace/media-service/ports"
)

type RegisterUploadInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
}

type Service struct {
	Assets ports.AssetRepository
	Clock  ports.Clock
	IDs    ports.IDGenerator
	Logger *slog.Logger
}

// RegisterUpload validates artwork metadata with the dropzone's rules
// (image MIME type, 5MB cap) and hands back a resolvable URL for mint.
func (s Service) RegisterUpload(ctx context.Context, input RegisterUploadInput) (ports.Asset, error) {
	fileName := sanitizeFileName(input.FileName)
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if fileName == "" || contentType == "" || input.SizeBytes <= 0 {
		return ports.Asset{}, domainerrors.ErrInvalidRequest
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ports.Asset{}, domainerrors.ErrNotAnImage
	}
	if input.SizeBytes > ports.MaxUploadBytes {
		return ports.Asset{}, domainerrors.ErrFileTooLarge
	}

	assetID, err := s.IDs.NewID(ctx)
	if err != nil {
		return ports.Asset{}, fmt.Errorf("%w: %v", domainerrors.ErrRegistrationFail, err)
	}
	asset := ports.Asset{
		AssetID:     assetID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   input.SizeBytes,
		URL:         "/uploads/" + assetID + "/" + fileName,
		UploadedAt:  s.now(),
	}
	if err := s.Assets.SaveAsset(ctx, asset); err != nil {
		return ports.Asset{}, fmt.Errorf("%w: %v", domainerrors.ErrRegistrationFail, err)
	}

	resolveLogger(s.Logger).Info("upload registered",
		"event", "media_upload_registered",
		"module", "marketplace/media-service",
		"layer", "application",
		"asset_id", asset.AssetID,
		"content_type", asset.ContentType,
		"size_bytes", asset.SizeBytes,
	)
	return asset, nil
}

func (s Service) GetAsset(ctx context.Context, assetID string) (ports.Asset, bool) {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return ports.Asset{}, false
	}
	asset, found, err := s.Assets.GetAsset(ctx, assetID)
	if err != nil {
		resolveLogger(s.Logger).Warn("asset lookup failed",
			"event", "media_asset_lookup_failed",
			"module", "marketplace/media-service",
			"layer", "application",
			"asset_id", assetID,
			"error", err.Error(),
		)
		return ports.Asset{}, false
	}
	return asset, found
}

func sanitizeFileName(raw string) string {
	name := path.Base(strings.TrimSpace(strings.ReplaceAll(raw, "\\", "/")))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
