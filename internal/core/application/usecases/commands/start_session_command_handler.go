package commands

import (
	"context"

	"boxoffice/internal/core/domain/model/session"
	"boxoffice/internal/core/ports"
)

// StartSessionCommandHandler opens new buyer sessions.
//
// Example:
//
//	handler := NewStartSessionCommandHandler(sessionStore)
//	cmd, _ := NewStartSessionCommand(kernel.NewUUID())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("session start failed: %w", err)
//	}
type StartSessionCommandHandler struct {
	sessions ports.SessionStore
}

// NewStartSessionCommandHandler creates a handler for session creation.
func NewStartSessionCommandHandler(sessions ports.SessionStore) StartSessionCommandHandler {
	return StartSessionCommandHandler{sessions: sessions}
}

// Handle creates the session with an empty selection and registers it.
func (h StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := session.NewSession(cmd.SessionID())
	if err != nil {
		return err
	}

	return h.sessions.Add(ctx, s)
}
