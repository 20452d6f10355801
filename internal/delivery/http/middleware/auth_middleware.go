package middleware

import (
	"hypeup/config"
	"hypeup/internal/delivery/http/response"
	"hypeup/internal/domain/entity"
	"hypeup/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyAccount is the echo.Context key the authenticated account is stored under.
const keyAccount = "account"

// AuthMiddleware resolves the session cookie into an account and gates
// the admin-only routes. Every request re-reads the session from the
// store, so a logout or expiry takes effect immediately.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, cfg: cfg}
}

// SessionToken extracts the raw session token from the request cookie.
// Returns the empty string when the cookie is absent.
func (m *AuthMiddleware) SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(m.cfg.Session.CookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// RequireAdmin rejects the request with a 401 unless the session cookie
// resolves to an account with the admin role. Missing cookies, invalid
// or expired sessions, store failures and non-admin roles all produce
// the same envelope so the gate leaks nothing about which check failed.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.SessionToken(c)
		if token == "" {
			return response.Unauthorized(c, "Authentication required")
		}

		account, err := m.authUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "Authentication required")
		}

		if account.Role != entity.RoleAdmin {
			return response.Unauthorized(c, "Authentication required")
		}

		c.Set(keyAccount, account)

		return next(c)
	}
}

// Account returns the account stored by RequireAdmin, or nil.
func Account(c echo.Context) *entity.Account {
	account, ok := c.Get(keyAccount).(*entity.Account)
	if !ok {
		return nil
	}

	return account
}
