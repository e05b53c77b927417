package session

import (
	"sync"
	"time"

	"github.com/arya/movie-mate-backend/internal/domain"
)

type entry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map. Expiry is sliding: every
// successful Get pushes the deadline out by the idle timeout. Expired entries
// are dropped lazily on Get and swept on Create, so no janitor goroutine is
// needed.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*entry
}

func NewMemoryStore(idleTimeout time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      idleTimeout,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

func (s *MemoryStore) Create(userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.sessions[token] = &entry{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryStore) Get(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrNoSession
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, token)
		return "", domain.ErrNoSession
	}

	e.expiresAt = s.now().Add(s.ttl)
	return e.userID, nil
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// sweepLocked drops expired entries. Callers must hold mu. The map stays
// small (one entry per live login), so a full pass per Create is fine.
func (s *MemoryStore) sweepLocked() {
	now := s.now()
	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
