package session

import (
	"context"
	"time"
)

// Session represents an authenticated teacher session.
// It intentionally stores only the identity, not auth state.
type Session struct {
	SessionID string    // opaque token handed to the client
	Username  string    // teacher username from the credential file
	CreatedAt time.Time // when the login happened
}

// Store defines how sessions are stored and retrieved.
// There is no server-side expiry: a session lives until Delete.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
