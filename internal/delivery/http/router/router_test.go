package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hypeup/config"
	"hypeup/internal/delivery/http/middleware"
	"hypeup/internal/delivery/http/router/handler"
	"hypeup/internal/delivery/http/validator"
	"hypeup/internal/domain/entity"
	"hypeup/internal/domain/repository"
	infraauth "hypeup/internal/infra/auth"
	"hypeup/internal/infra/chatbot"
	"hypeup/internal/infra/persistence/memory"
	"hypeup/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the full HTTP surface over the in-memory store, the
// same assembly the server does minus fx and the listener.
type testApp struct {
	e        *echo.Echo
	cfg      *config.Config
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	analytic repository.AnalyticsRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: "hypeup_session",
			Secret:     "test-session-secret",
			TTL:        24 * time.Hour,
		},
		Admin: &config.AdminConfig{
			Username: "admin",
			Password: "s3cret",
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	accounts := memory.NewAccountRepository(store)
	applications := memory.NewApplicationRepository(store)
	analytics := memory.NewAnalyticsRepository(store)
	sessions := memory.NewSessionRepository(store)

	authUC := impl.NewAuthService(cfg, accounts, sessions, infraauth.NewPasswordVerifier(), infraauth.NewTokenCodec(cfg), logger)
	applicationUC := impl.NewApplicationService(applications, logger)
	analyticsUC := impl.NewAnalyticsService(analytics, applications, logger)
	chatbotUC := impl.NewChatbotService(chatbot.NewKeywordResponder(), analytics, logger)

	authMW := middleware.NewAuthMiddleware(authUC, cfg)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		ApplicationHandler: handler.NewApplicationHandler(applicationUC, logger),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsUC, logger),
		ChatbotHandler:     handler.NewChatbotHandler(chatbotUC, logger),
		AuthHandler:        handler.NewAuthHandler(authUC, authMW, cfg, logger),
		AuthMiddleware:     authMW,
	})
	r.RegisterRoutes(e)

	require.NoError(t, impl.EnsureAdminAccount(context.Background(), cfg, accounts, logger))

	return &testApp{e: e, cfg: cfg, accounts: accounts, sessions: sessions, analytic: analytics}
}

func (app *testApp) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func (app *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := app.do(http.MethodPost, "/api/auth/login", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == app.cfg.Session.CookieName {
			return cookie
		}
	}

	t.Fatal("login response did not set the session cookie")

	return nil
}

const validApplication = `{
	"telegramUsername": "@streamer_one",
	"twitchChannel": "https://twitch.tv/streamer_one",
	"contentType": "gaming",
	"streamSchedule": "weekday evenings",
	"goals": "grow a loyal community",
	"challenges": "discoverability is hard"
}`

func TestSubmitApplication_Success(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/streamer-application", validApplication)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])

	application, ok := body["application"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, application["id"])
	assert.NotEmpty(t, application["createdAt"])
	assert.Equal(t, "@streamer_one", application["telegramUsername"])
}

func TestSubmitApplication_ValidationFailure(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/streamer-application", `{"goals":"short"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.(map[string]any)["field"].(string))
	}
	assert.Contains(t, fields, "telegramUsername")
	assert.Contains(t, fields, "goals")
}

func TestAdminRoutes_RejectAnonymous(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/streamer-applications", "/api/analytics"} {
		rec := app.do(http.MethodGet, path, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestAdminRoutes_RejectNonAdminRole(t *testing.T) {
	app := newTestApp(t)

	viewer := &entity.Account{Username: "viewer", Password: "viewerpass", Role: entity.RoleViewer}
	require.NoError(t, app.accounts.Create(context.Background(), viewer))

	cookie := app.login(t, "viewer", "viewerpass")

	rec := app.do(http.MethodGet, "/api/streamer-applications", "", cookie)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The session itself is still valid; only the gate rejects it.
	status := decode(t, app.do(http.MethodGet, "/api/auth/status", "", cookie))
	assert.Equal(t, true, status["isAuthenticated"])
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid username or password", body["message"])
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_SetsCookieFlags(t *testing.T) {
	app := newTestApp(t)

	cookie := app.login(t, "admin", "s3cret")

	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
	assert.NotEmpty(t, cookie.Value)
	assert.InDelta(t, int(24*time.Hour/time.Second), cookie.MaxAge, 5)
}

func TestAuthFlow_LoginStatusLogout(t *testing.T) {
	app := newTestApp(t)

	// Anonymous status is a plain 200, not an error.
	status := decode(t, app.do(http.MethodGet, "/api/auth/status", ""))
	assert.Equal(t, false, status["isAuthenticated"])

	cookie := app.login(t, "admin", "s3cret")

	status = decode(t, app.do(http.MethodGet, "/api/auth/status", "", cookie))
	assert.Equal(t, true, status["isAuthenticated"])
	user, ok := status["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, "admin", user["role"])

	listRec := app.do(http.MethodGet, "/api/streamer-applications", "", cookie)
	assert.Equal(t, http.StatusOK, listRec.Code)

	logoutRec := app.do(http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, logoutRec.Code)
	assert.Equal(t, true, decode(t, logoutRec)["success"])

	// The server-side session is gone: the old cookie no longer works.
	status = decode(t, app.do(http.MethodGet, "/api/auth/status", "", cookie))
	assert.Equal(t, false, status["isAuthenticated"])

	listRec = app.do(http.MethodGet, "/api/streamer-applications", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, listRec.Code)
}

func TestLogout_WithoutSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])
}

func TestApplicationsList_NewestFirst(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/streamer-application", validApplication).Code)
	second := strings.Replace(validApplication, "@streamer_one", "@streamer_two", 1)
	require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/streamer-application", second).Code)

	cookie := app.login(t, "admin", "s3cret")
	body := decode(t, app.do(http.MethodGet, "/api/streamer-applications", "", cookie))

	applications, ok := body["applications"].([]any)
	require.True(t, ok)
	require.Len(t, applications, 2)
	assert.Equal(t, "@streamer_two", applications[0].(map[string]any)["telegramUsername"])
	assert.Equal(t, "@streamer_one", applications[1].(map[string]any)["telegramUsername"])
}

func TestApplicationDetail(t *testing.T) {
	app := newTestApp(t)

	submitted := decode(t, app.do(http.MethodPost, "/api/streamer-application", validApplication))
	id := submitted["application"].(map[string]any)["id"].(string)

	cookie := app.login(t, "admin", "s3cret")

	rec := app.do(http.MethodGet, "/api/streamer-applications/"+id, "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decode(t, rec)["application"].(map[string]any)["id"])

	missing := app.do(http.MethodGet, "/api/streamer-applications/not-a-uuid", "", cookie)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestChatbot_KeywordReply(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/chatbot", `{"message":"I need help with my setup"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["response"], "I'm here to help")

	count, err := app.analytic.CountChatInteractions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestChatbot_EmptyMessage(t *testing.T) {
	app := newTestApp(t)

	for _, payload := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		rec := app.do(http.MethodPost, "/api/chatbot", payload)

		require.Equal(t, http.StatusBadRequest, rec.Code, "payload %s", payload)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Message is required", body["message"])
	}
}

func TestPageView_FeedsAnalytics(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/analytics/page-view", `{"path":"/pricing"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	// Omitted path still counts, recorded as "/".
	require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/analytics/page-view", `{}`).Code)

	cookie := app.login(t, "admin", "s3cret")
	body := decode(t, app.do(http.MethodGet, "/api/analytics", "", cookie))

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["totalPageViews"])
	assert.Equal(t, float64(2), data["pageViewsToday"])
	assert.Equal(t, float64(0), data["totalApplications"])
	assert.NotNil(t, data["recentApplications"])
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
