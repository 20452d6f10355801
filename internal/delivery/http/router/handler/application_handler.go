// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"hypeup/internal/delivery/http/response"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApplicationHandler holds dependencies for streamer-application handlers.
type ApplicationHandler struct {
	uc     usecase.ApplicationUsecase
	logger *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(uc usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles the public application submission. Binding strips any
// fields outside the declared schema; validation failures surface as a
// 400 with per-field errors via the error handler.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var input usecase.SubmitApplicationInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid application payload")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	application, err := h.uc.Submit(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"application": response.NewApplicationView(application),
	})
}

// List handles the admin listing of every application, newest first.
func (h *ApplicationHandler) List(c echo.Context) error {
	applications, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"applications": response.NewApplicationViews(applications),
	})
}

// Get handles the admin detail view of a single application.
func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrApplicationNotFound
	}

	application, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"application": response.NewApplicationView(application),
	})
}
