// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"hypeup/internal/domain/entity"
)

// LoginInput defines the credentials presented to the login endpoint.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the authenticated account and the raw session
// token. The token goes into the cookie and is never persisted as-is.
type LoginOutput struct {
	Account   *entity.Account
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies the credentials against the provisioned account and,
	// on success, creates a durable server-side session. A mismatch on
	// either field yields the same generic credential error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout destroys the session identified by the raw token. Idempotent:
	// logging out an unknown or already-destroyed session is not an error.
	Logout(ctx context.Context, rawToken string) error

	// ResolveSession maps a raw cookie token back to its account,
	// re-reading both session and account from the store on every call.
	// Missing, expired, or orphaned sessions yield ErrSessionInvalid.
	ResolveSession(ctx context.Context, rawToken string) (*entity.Account, error)
}
