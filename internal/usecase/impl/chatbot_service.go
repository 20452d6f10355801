// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "hypeup/internal/delivery/context"
	"hypeup/internal/domain/entity"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/domain/repository"
	"hypeup/internal/domain/service"
	"hypeup/internal/usecase"

	"go.uber.org/fx"
)

// chatbotService implements the ChatbotUsecase interface.
type chatbotService struct {
	fx.In

	responder     service.ChatbotResponder
	analyticsRepo repository.AnalyticsRepository
	logger        *slog.Logger
}

// NewChatbotService is the constructor for chatbotService.
func NewChatbotService(
	responder service.ChatbotResponder,
	analyticsRepo repository.AnalyticsRepository,
	logger *slog.Logger,
) usecase.ChatbotUsecase {
	return &chatbotService{
		responder:     responder,
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *chatbotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Converse selects the reply for the message and records the exchange.
// The exchange record is part of the contract (it feeds the dashboard
// counters), so a failed write fails the whole request.
func (srv *chatbotService) Converse(ctx context.Context, input *usecase.ChatMessageInput) (string, error) {
	reply := srv.responder.Reply(input.Message)

	interaction := &entity.ChatInteraction{
		UserMessage: input.Message,
		BotResponse: reply,
	}

	if err := srv.analyticsRepo.CreateChatInteraction(ctx, interaction); err != nil {
		srv.log(ctx).Error("Failed to record chat interaction", slog.Any("error", err))

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to record chat interaction")
	}

	return reply, nil
}
