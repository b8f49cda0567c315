package session

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Status describes where an upload session is in its lifecycle.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

// Session tracks one upload batch from ingestion to finished graph.
type Session struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Files     []string  `json:"files"`
	FileCount int       `json:"file_count"`
	CreatedAt time.Time `json:"created_at"`
	Error     string    `json:"error,omitempty"`
}

// Store keeps recent sessions in a bounded LRU cache. Old sessions are
// evicted together with their graph availability; the graph artifact
// itself stays in the configured GraphStore.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *Session]
}

// NewStore creates a session store holding at most capacity sessions.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = 1024
	}
	cache, err := lru.New[string, *Session](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &Store{cache: cache}, nil
}

// Put registers a session.
func (s *Store) Put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(session.ID, session)
}

// Get returns a copy of the session, so callers never race with status
// updates.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.cache.Get(id)
	if !ok {
		return Session{}, false
	}
	return *session, true
}

// SetStatus transitions the session to the given status. The message is
// recorded only for StatusError.
func (s *Store) SetStatus(id string, status Status, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.cache.Get(id)
	if !ok {
		return
	}
	session.Status = status
	if status == StatusError {
		session.Error = message
	}
}
