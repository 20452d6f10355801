// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"hypeup/internal/delivery/http/response"
	"hypeup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for analytics handlers.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// TrackPageView handles the public page-view beacon. The user agent and
// remote address come from the request itself, never from the body.
func (h *AnalyticsHandler) TrackPageView(c echo.Context) error {
	var input usecase.TrackPageViewInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid page view payload")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	input.UserAgent = c.Request().UserAgent()
	input.IP = c.RealIP()

	if err := h.uc.TrackPageView(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil)
}

// Summary handles the admin dashboard aggregate.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"data": response.NewSummaryView(summary),
	})
}
