// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"hypeup/config"
	"hypeup/internal/delivery/http/middleware"
	"hypeup/internal/delivery/http/response"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the dashboard login endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	authMW *middleware.AuthMiddleware
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, authMW *middleware.AuthMiddleware, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		authMW: authMW,
		cfg:    cfg,
		logger: logger,
	}
}

// Login verifies the posted credentials and, on success, sets the
// session cookie. The token never appears in the response body.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidCredentials
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(out.Token, out.ExpiresAt))

	return response.OK(c, map[string]any{
		"user": response.NewAccountView(out.Account),
	})
}

// Logout destroys the server-side session and expires the cookie.
// Safe to call without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.authMW.SessionToken(c); token != "" {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(h.expiredCookie())

	return response.OK(c, map[string]any{
		"message": "Logged out successfully",
	})
}

// Status reports whether the request carries a live session. Absent or
// invalid sessions are a normal 200 answer, not an error; only a store
// failure is reported as one.
func (h *AuthHandler) Status(c echo.Context) error {
	token := h.authMW.SessionToken(c)
	if token == "" {
		return c.JSON(http.StatusOK, map[string]any{"isAuthenticated": false})
	}

	account, err := h.uc.ResolveSession(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionInvalid) {
			return c.JSON(http.StatusOK, map[string]any{"isAuthenticated": false})
		}

		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success":         false,
			"isAuthenticated": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"user":            response.NewAccountView(account),
	})
}

// sessionCookie builds the login cookie. HttpOnly keeps it away from
// scripts; SameSite=Lax still sends it on top-level navigation.
func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt) / time.Second),
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredCookie builds the removal cookie sent on logout.
func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
