// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"strings"

	"hypeup/internal/delivery/http/response"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatbotHandler holds dependencies for the chatbot widget endpoint.
type ChatbotHandler struct {
	uc     usecase.ChatbotUsecase
	logger *slog.Logger
}

// NewChatbotHandler is the constructor for ChatbotHandler, injected by Fx.
func NewChatbotHandler(uc usecase.ChatbotUsecase, logger *slog.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		uc:     uc,
		logger: logger,
	}
}

// Converse handles a visitor message and returns the canned reply.
// An absent or blank message is a 400 with a fixed message, not the
// per-field validation envelope.
func (h *ChatbotHandler) Converse(c echo.Context) error {
	var input usecase.ChatMessageInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMessageRequired
	}

	if strings.TrimSpace(input.Message) == "" {
		return domainerrors.ErrMessageRequired
	}

	reply, err := h.uc.Converse(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{
		"response": reply,
	})
}
