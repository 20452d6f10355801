// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated dashboard login. The raw token
// handed to the browser is never stored; only its keyed hash is, so a
// leaked sessions table cannot be replayed. Sessions expire at a fixed
// absolute time after creation and survive process restarts when backed
// by the durable store.
type Session struct {
	ID        uuid.UUID // The unique identifier for this session record.
	AccountID uuid.UUID // Links the session to the Account it belongs to.
	TokenHash string    // HMAC-SHA256 hash of the raw cookie token.
	ExpiresAt time.Time // Absolute expiry; the session is invalid from this instant on.
	CreatedAt time.Time // Timestamp of when the login happened.
}

// Expired reports whether the session is past its absolute lifetime.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
