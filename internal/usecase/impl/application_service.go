// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "hypeup/internal/delivery/context"
	"hypeup/internal/domain/entity"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/domain/repository"
	"hypeup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// applicationService implements the ApplicationUsecase interface.
type applicationService struct {
	fx.In

	applicationRepo repository.ApplicationRepository
	logger          *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	logger *slog.Logger,
) usecase.ApplicationUsecase {
	return &applicationService{
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit persists a new streamer application and returns the stored record.
func (srv *applicationService) Submit(ctx context.Context, input *usecase.SubmitApplicationInput) (*entity.StreamerApplication, error) {
	application := &entity.StreamerApplication{
		TelegramUserID:   input.TelegramUserID,
		TelegramUsername: input.TelegramUsername,
		TwitchChannel:    input.TwitchChannel,
		YoutubeChannel:   input.YoutubeChannel,
		ContentType:      input.ContentType,
		StreamSchedule:   input.StreamSchedule,
		Goals:            input.Goals,
		Challenges:       input.Challenges,
		SocialMedia:      input.SocialMedia,
	}

	if err := srv.applicationRepo.Create(ctx, application); err != nil {
		srv.log(ctx).Error("Failed to create streamer application", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create streamer application")
	}

	srv.log(ctx).Info("Streamer application submitted",
		slog.Any("application_id", application.ID),
		slog.String("telegram_username", application.TelegramUsername),
	)

	return application, nil
}

// List returns every stored application, newest first.
func (srv *applicationService) List(ctx context.Context) ([]*entity.StreamerApplication, error) {
	applications, err := srv.applicationRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list streamer applications", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list streamer applications")
	}

	return applications, nil
}

// Get returns a single application by ID.
func (srv *applicationService) Get(ctx context.Context, id uuid.UUID) (*entity.StreamerApplication, error) {
	application, err := srv.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, domainerrors.ErrApplicationNotFound
		}

		srv.log(ctx).Error("Failed to find streamer application", slog.Any("error", err), slog.Any("application_id", id))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find streamer application")
	}

	return application, nil
}
