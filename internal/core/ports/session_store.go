package ports

import (
	"context"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/session"
)

// SessionStore keeps the live buyer sessions. Sessions are in-memory
// working state, not durable records; the store exists so commands,
// queries and background jobs share one view of them.
type SessionStore interface {
	// Add registers a new session.
	Add(ctx context.Context, s *session.Session) error

	// Get retrieves a session by its identifier.
	// Returns errs.ErrObjectNotFound when no such session exists.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// GetAll retrieves every live session.
	GetAll(ctx context.Context) ([]*session.Session, error)
}
