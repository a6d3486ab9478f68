// Package memory provides in-memory implementations of the session store
// and the seat hold store. The session store is the production store:
// sessions are live working state. The hold store backs development and
// tests when no Redis is configured.
package memory

import (
	"context"
	"sync"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/session"
	"boxoffice/internal/pkg/errs"
)

// SessionStore keeps sessions in a mutex-guarded map.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*session.Session)}
}

// Add registers a new session.
func (s *SessionStore) Add(_ context.Context, sess *session.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID().String()] = sess
	return nil
}

// Get retrieves a session by identifier.
func (s *SessionStore) Get(_ context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}

	return sess, nil
}

// GetAll retrieves every live session.
func (s *SessionStore) GetAll(_ context.Context) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*session.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}

	return sessions, nil
}
