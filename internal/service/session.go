package service

import (
	"context"

	"smapp/internal/models"
	"smapp/internal/observability"
)

// Session is the per-client state of an interactive session. The caller
// owns it and passes it to each Controller operation; the Controller keeps
// no session state of its own.
type Session struct {
	CurrentUserID *uint
	ViewingUserID *uint
	CorrelationID string
}

// NewSession returns an empty session with a fresh correlation ID.
func NewSession() *Session {
	return &Session{CorrelationID: observability.GenerateCorrelationID()}
}

// LoggedIn reports whether a current user is set.
func (s *Session) LoggedIn() bool {
	return s != nil && s.CurrentUserID != nil
}

// currentUser returns the current user's ID or ErrNoCurrentUser.
func (s *Session) currentUser() (uint, error) {
	if !s.LoggedIn() {
		return 0, models.ErrNoCurrentUser
	}
	return *s.CurrentUserID, nil
}

// context attaches the session's correlation and user IDs for logging.
func (s *Session) context(ctx context.Context) context.Context {
	if s == nil {
		return ctx
	}
	if s.CorrelationID != "" {
		ctx = observability.WithCorrelationID(ctx, s.CorrelationID)
	}
	if s.CurrentUserID != nil {
		ctx = observability.WithUserID(ctx, *s.CurrentUserID)
	}
	return ctx
}

func uintPtr(v uint) *uint {
	return &v
}
