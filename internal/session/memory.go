package session

import (
	"context"
	"sync"
	"time"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// MemoryStore keeps sessions in an in-process map. Suitable for the demo
// store mode only; sessions vanish on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

// NewMemoryStore returns an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session), now: time.Now}
}

func (s *MemoryStore) Save(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
