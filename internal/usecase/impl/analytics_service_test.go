package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hypeup/internal/domain/entity"
	"hypeup/internal/infra/persistence/memory"
	"hypeup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsFixture(t *testing.T) (*analyticsService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAnalyticsService(
		memory.NewAnalyticsRepository(store),
		memory.NewApplicationRepository(store),
		logger,
	)

	srv, ok := service.(*analyticsService)
	require.True(t, ok)

	return srv, store
}

func TestAnalyticsService_TrackPageView_DefaultsPath(t *testing.T) {
	service, store := newAnalyticsFixture(t)
	ctx := context.Background()

	err := service.TrackPageView(ctx, &usecase.TrackPageViewInput{UserAgent: "Mozilla/5.0", IP: "203.0.113.9"})

	require.NoError(t, err)

	count, err := memory.NewAnalyticsRepository(store).CountPageViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAnalyticsService_Summary_Empty(t *testing.T) {
	service, _ := newAnalyticsFixture(t)

	summary, err := service.Summary(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.TotalApplications)
	assert.Zero(t, summary.TotalPageViews)
	assert.Zero(t, summary.TotalChatInteractions)
	assert.Zero(t, summary.PageViewsToday)
	assert.Zero(t, summary.ChatInteractionsToday)
	assert.Empty(t, summary.RecentApplications)
}

func TestAnalyticsService_Summary_Counts(t *testing.T) {
	service, store := newAnalyticsFixture(t)
	ctx := context.Background()

	analyticsRepo := memory.NewAnalyticsRepository(store)
	applicationRepo := memory.NewApplicationRepository(store)

	for range 3 {
		require.NoError(t, analyticsRepo.CreatePageView(ctx, &entity.PageView{Path: "/"}))
	}
	require.NoError(t, analyticsRepo.CreateChatInteraction(ctx, &entity.ChatInteraction{UserMessage: "hi", BotResponse: "hello"}))

	for i := range 12 {
		app := &entity.StreamerApplication{
			TelegramUsername: "@streamer",
			ContentType:      "gaming",
			StreamSchedule:   "daily",
			Goals:            "grow a loyal community",
			Challenges:       "discoverability is hard",
			CreatedAt:        time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, applicationRepo.Create(ctx, app))
	}

	summary, err := service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalApplications)
	assert.Equal(t, int64(3), summary.TotalPageViews)
	assert.Equal(t, int64(1), summary.TotalChatInteractions)
	assert.Len(t, summary.RecentApplications, recentApplicationsLimit)
}

func TestAnalyticsService_Summary_TodayUsesLocalMidnight(t *testing.T) {
	service, store := newAnalyticsFixture(t)
	ctx := context.Background()

	// Pin "now" so the midnight boundary is deterministic.
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)
	service.now = func() time.Time { return now }

	midnight := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	analyticsRepo := memory.NewAnalyticsRepository(store)

	require.NoError(t, analyticsRepo.CreatePageView(ctx, &entity.PageView{Path: "/", CreatedAt: midnight}))
	require.NoError(t, analyticsRepo.CreatePageView(ctx, &entity.PageView{Path: "/", CreatedAt: midnight.Add(-time.Second)}))
	require.NoError(t, analyticsRepo.CreatePageView(ctx, &entity.PageView{Path: "/", CreatedAt: now}))

	summary, err := service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalPageViews)
	// 23:59:59 yesterday is excluded; exactly-midnight today is included.
	assert.Equal(t, int64(2), summary.PageViewsToday)
}
