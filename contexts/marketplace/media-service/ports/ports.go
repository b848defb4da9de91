package ports

import (
	"context"
	"time"
)

// MaxUploadBytes is the dropzone limit: artwork uploads are capped at 5 MiB.
const MaxUploadBytes = 5 * 1024 * 1024

// Asset is a registered artwork upload. The demo stores only metadata and a
// resolvable URL; bytes never leave the client in this system.
type Asset struct {
	AssetID     string
	FileName    string
	ContentType string
	SizeBytes   int64
	URL         string
	UploadedAt  time.Time
}

type AssetRepository interface {
	SaveAsset(ctx context.Context, asset Asset) error
	GetAsset(ctx context.Context, assetID string) (Asset, bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
