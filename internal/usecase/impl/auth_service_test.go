package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hypeup/config"
	"hypeup/internal/domain/entity"
	domainerrors "hypeup/internal/domain/errors"
	infraauth "hypeup/internal/infra/auth"
	"hypeup/internal/infra/persistence/memory"
	"hypeup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "hypeup_session",
			Secret:     "test-session-secret",
			TTL:        time.Hour,
		},
		Admin: &config.AdminConfig{
			Username: "admin",
			Password: "s3cret",
		},
	}
}

type authFixture struct {
	service usecase.AuthUsecase
	store   *memory.Store
	cfg     *config.Config
	admin   *entity.Account
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := testConfig()
	store := memory.NewStore()
	accountRepo := memory.NewAccountRepository(store)
	sessionRepo := memory.NewSessionRepository(store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	account := &entity.Account{
		Username: "admin",
		Password: "s3cret",
		Role:     entity.RoleAdmin,
	}
	require.NoError(t, accountRepo.Create(context.Background(), account))

	service := NewAuthService(
		cfg,
		accountRepo,
		sessionRepo,
		infraauth.NewPasswordVerifier(),
		infraauth.NewTokenCodec(cfg),
		logger,
	)

	return &authFixture{service: service, store: store, cfg: cfg, admin: account}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "admin", Password: "s3cret"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.Account.Username)
	assert.Equal(t, entity.RoleAdmin, out.Account.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), out.ExpiresAt, 5*time.Second)

	// The fresh token must resolve back to the same account.
	account, err := fx.service.ResolveSession(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Account.ID, account.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := newAuthFixture(t)

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "admin", Password: "nope"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := newAuthFixture(t)

	out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "ghost", Password: "s3cret"})

	assert.Nil(t, out)
	// Same error as a wrong password, so the endpoint leaks nothing.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout_InvalidatesSession(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, out.Token))

	_, err = fx.service.ResolveSession(ctx, out.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	assert.NoError(t, fx.service.Logout(ctx, "never-issued-token"))
	assert.NoError(t, fx.service.Logout(ctx, ""))
}

func TestAuthService_ResolveSession_EmptyToken(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.service.ResolveSession(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_ResolveSession_GarbageToken(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.service.ResolveSession(context.Background(), "deadbeef")

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}
