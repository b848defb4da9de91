package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "mintbay/contexts/identity-access/wallet-service/domain/errors"
	"mintbay/contexts/identity-access/wallet-service/ports"
)

// Store keeps wallet sessions in process memory; sessions reset on restart,
// like the browser wallet adapter they stand in for.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]ports.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]ports.Session)}
}

func (s *Store) CreateSession(_ context.Context, session ports.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = session
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (ports.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	return session, ok, nil
}

func (s *Store) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
