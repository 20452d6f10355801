// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hypeup/internal/delivery/context"
	"hypeup/internal/domain/entity"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/domain/repository"
	"hypeup/internal/usecase"

	"go.uber.org/fx"
)

// recentApplicationsLimit caps the application preview on the dashboard.
const recentApplicationsLimit = 10

// defaultPagePath is recorded when the client omits the visited path.
const defaultPagePath = "/"

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	fx.In

	analyticsRepo   repository.AnalyticsRepository
	applicationRepo repository.ApplicationRepository
	logger          *slog.Logger
	now             func() time.Time
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	applicationRepo repository.ApplicationRepository,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo:   analyticsRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrackPageView records a single page visit.
func (srv *analyticsService) TrackPageView(ctx context.Context, input *usecase.TrackPageViewInput) error {
	path := input.Path
	if path == "" {
		path = defaultPagePath
	}

	view := &entity.PageView{
		Path:      path,
		UserAgent: input.UserAgent,
		IP:        input.IP,
	}

	if err := srv.analyticsRepo.CreatePageView(ctx, view); err != nil {
		srv.log(ctx).Error("Failed to record page view", slog.Any("error", err), slog.String("path", path))

		return domainerrors.NewDatabaseExecuteError(err, "failed to record page view")
	}

	return nil
}

// Summary computes the aggregate dashboard view. Each count is read
// directly from the store so the numbers are exact at query time.
func (srv *analyticsService) Summary(ctx context.Context) (*entity.AnalyticsSummary, error) {
	totalApplications, err := srv.applicationRepo.Count(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count applications", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count applications")
	}

	totalPageViews, err := srv.analyticsRepo.CountPageViews(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count page views", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count page views")
	}

	totalChatInteractions, err := srv.analyticsRepo.CountChatInteractions(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count chat interactions", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count chat interactions")
	}

	recent, err := srv.applicationRepo.ListRecent(ctx, recentApplicationsLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list recent applications", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recent applications")
	}

	// "Today" starts at local midnight, not 24 hours ago.
	startOfDay := srv.startOfToday()

	pageViewsToday, err := srv.analyticsRepo.CountPageViewsSince(ctx, startOfDay)
	if err != nil {
		srv.log(ctx).Error("Failed to count today's page views", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count today's page views")
	}

	chatInteractionsToday, err := srv.analyticsRepo.CountChatInteractionsSince(ctx, startOfDay)
	if err != nil {
		srv.log(ctx).Error("Failed to count today's chat interactions", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count today's chat interactions")
	}

	return &entity.AnalyticsSummary{
		TotalApplications:     totalApplications,
		TotalPageViews:        totalPageViews,
		TotalChatInteractions: totalChatInteractions,
		RecentApplications:    recent,
		PageViewsToday:        pageViewsToday,
		ChatInteractionsToday: chatInteractionsToday,
	}, nil
}

// startOfToday returns local midnight of the current day.
func (srv *analyticsService) startOfToday() time.Time {
	now := srv.now()
	year, month, day := now.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}
