// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hypeup/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session matches the presented token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a matching session is past its absolute lifetime.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the interface for server-side session storage.
// Sessions are looked up by the keyed hash of the opaque cookie token and
// must survive process restarts when backed by the durable store.
type SessionRepository interface {
	// Create persists a new session, representing a dashboard login.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by its stored token hash.
	// Returns ErrSessionNotFound when absent and ErrSessionExpired when
	// the record exists but is past its absolute lifetime.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session by its token hash, ending the login.
	// Deleting a session that does not exist returns ErrSessionNotFound;
	// callers that need idempotent logout treat that as success.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their absolute lifetime.
	DeleteExpired(ctx context.Context) error
}
