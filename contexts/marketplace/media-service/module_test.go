package mediaservice_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	mediaservice "mintbay/contexts/marketplace/media-service"
	domainerrors "mintbay/contexts/marketplace/media-service/domain/errors"
	"mintbay/contexts/marketplace/media-service/ports"
	mediahttp "mintbay/contexts/marketplace/media-service/transport/http"
)

func TestRegisterUpload(t *testing.T) {
	module := mediaservice.NewInMemoryModule(nil)

	resp, err := module.Handler.RegisterUploadHandler(context.Background(), mediahttp.RegisterUploadRequest{
		FileName:    "artwork.png",
		ContentType: "image/png",
		SizeBytes:   1024,
	})
	if err != nil {
		t.Fatalf("register upload failed: %v", err)
	}
	if resp.Data.AssetID == "" {
		t.Fatalf("expected an asset id")
	}
	if !strings.HasPrefix(resp.Data.URL, "/uploads/") || !strings.HasSuffix(resp.Data.URL, "/artwork.png") {
		t.Fatalf("unexpected asset url %q", resp.Data.URL)
	}

	fetched, found := module.Handler.GetAssetHandler(context.Background(), resp.Data.AssetID)
	if !found {
		t.Fatalf("registered asset should be retrievable")
	}
	if fetched.Data.FileName != "artwork.png" {
		t.Fatalf("unexpected file name %q", fetched.Data.FileName)
	}
}

func TestRegisterUploadRejectsNonImage(t *testing.T) {
	module := mediaservice.NewInMemoryModule(nil)

	_, err := module.Handler.RegisterUploadHandler(context.Background(), mediahttp.RegisterUploadRequest{
		FileName:    "notes.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
	})
	if !errors.Is(err, domainerrors.ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestRegisterUploadRejectsOversize(t *testing.T) {
	module := mediaservice.NewInMemoryModule(nil)

	_, err := module.Handler.RegisterUploadHandler(context.Background(), mediahttp.RegisterUploadRequest{
		FileName:    "huge.png",
		ContentType: "image/png",
		SizeBytes:   ports.MaxUploadBytes + 1,
	})
	if !errors.Is(err, domainerrors.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	// Exactly at the cap is fine.
	if _, err := module.Handler.RegisterUploadHandler(context.Background(), mediahttp.RegisterUploadRequest{
		FileName:    "edge.png",
		ContentType: "image/png",
		SizeBytes:   ports.MaxUploadBytes,
	}); err != nil {
		t.Fatalf("upload at the size cap should succeed: %v", err)
	}
}

func TestRegisterUploadSanitizesFileName(t *testing.T) {
	module := mediaservice.NewInMemoryModule(nil)

	resp, err := module.Handler.RegisterUploadHandler(context.Background(), mediahttp.RegisterUploadRequest{
		FileName:    "../../etc/passwd.png",
		ContentType: "image/png",
		SizeBytes:   10,
	})
	if err != nil {
		t.Fatalf("register upload failed: %v", err)
	}
	if resp.Data.FileName != "passwd.png" {
		t.Fatalf("expected path components stripped, got %q", resp.Data.FileName)
	}
}

func TestRegisterUploadRejectsEmptyInput(t *testing.T) {
	module := mediaservice.NewInMemoryModule(nil)

	_, err := module.Handler.RegisterUploadHandler(context.Background(), mediahttp.RegisterUploadRequest{})
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
