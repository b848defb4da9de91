package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mintbay/contexts/marketplace/media-service/ports"
)

type Store struct {
	mu     sync.RWMutex
	assets map[string]ports.Asset
}

func NewStore() *Store {
	return &Store{assets: make(map[string]ports.Asset)}
}

func (s *Store) SaveAsset(_ context.Context, asset ports.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets[asset.AssetID] = asset
	return nil
}

func (s *Store) GetAsset(_ context.Context, assetID string) (ports.Asset, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[assetID]
	return asset, ok, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
