// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"hypeup/config"
	deliverycontext "hypeup/internal/delivery/context"
	"hypeup/internal/domain/entity"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/domain/repository"
	"hypeup/internal/domain/service"
	"hypeup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	fx.In

	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	verifier    service.CredentialVerifier
	tokens      service.SessionTokenCodec
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	verifier service.CredentialVerifier,
	tokens service.SessionTokenCodec,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		verifier:    verifier,
		tokens:      tokens,
		sessionTTL:  cfg.Session.TTL,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and opens a server-side session.
// Unknown usernames and wrong passwords produce the identical error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("Login attempt for unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up account", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up account")
	}

	if !srv.verifier.Verify(input.Password, account.Password) {
		srv.log(ctx).Info("Login attempt with wrong password", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.NewToken()
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	session := &entity.Session{
		AccountID: account.ID,
		TokenHash: srv.tokens.Hash(token),
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	srv.log(ctx).Info("Dashboard login",
		slog.String("username", account.Username),
		slog.Any("account_id", account.ID),
	)

	return &usecase.LoginOutput{
		Account:   account,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout destroys the session behind the raw token. Unknown tokens are
// treated as already logged out.
func (srv *authService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokens.Hash(rawToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	srv.log(ctx).Info("Dashboard logout")

	return nil
}

// ResolveSession maps a raw cookie token to its account. Every call
// re-reads the store, so a logout anywhere invalidates the cookie at once.
func (srv *authService) ResolveSession(ctx context.Context, rawToken string) (*entity.Account, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokens.Hash(rawToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrSessionInvalid
		}

		srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up session")
	}

	account, err := srv.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Session outlived its account; treat as not logged in.
			return nil, domainerrors.ErrSessionInvalid
		}

		srv.log(ctx).Error("Failed to load session account", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load session account")
	}

	return account, nil
}
