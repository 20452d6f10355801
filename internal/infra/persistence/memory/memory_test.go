package memory

import (
	"context"
	"testing"
	"time"

	"hypeup/internal/domain/entity"
	"hypeup/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_RoundTrip(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()

	account := &entity.Account{Username: "admin", Password: "secret", Role: entity.RoleAdmin}
	require.NoError(t, repo.Create(ctx, account))
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	byName, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byName.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_RejectsDuplicateUsername(t *testing.T) {
	store := NewStore()
	repo := NewAccountRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{Username: "admin", Password: "a", Role: entity.RoleAdmin}))
	err := repo.Create(ctx, &entity.Account{Username: "admin", Password: "b", Role: entity.RoleAdmin})
	assert.Error(t, err)
}

func TestApplicationRepository_ListAllNewestFirst(t *testing.T) {
	store := NewStore()
	repo := NewApplicationRepository(store)
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 3; i++ {
		app := &entity.StreamerApplication{
			TelegramUsername: "@streamer",
			ContentType:      "gaming",
			StreamSchedule:   "daily",
			Goals:            "grow a loyal community",
			Challenges:       "discoverability is hard",
			CreatedAt:        now.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, app))
	}

	applications, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, applications, 3)
	assert.True(t, applications[0].CreatedAt.After(applications[1].CreatedAt))
	assert.True(t, applications[1].CreatedAt.After(applications[2].CreatedAt))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestApplicationRepository_ListRecentHonorsLimit(t *testing.T) {
	store := NewStore()
	repo := NewApplicationRepository(store)
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 12; i++ {
		app := &entity.StreamerApplication{
			TelegramUsername: "@streamer",
			ContentType:      "music",
			StreamSchedule:   "weekends",
			Goals:            "reach more listeners",
			Challenges:       "small starting audience",
			CreatedAt:        now.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(ctx, app))
	}

	recent, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 10)
	// Newest of the twelve must lead the slice.
	assert.Equal(t, now.Add(11*time.Second).Unix(), recent[0].CreatedAt.Unix())
}

func TestApplicationRepository_FindByID(t *testing.T) {
	store := NewStore()
	repo := NewApplicationRepository(store)
	ctx := context.Background()

	app := &entity.StreamerApplication{
		TelegramUsername: "@abc",
		ContentType:      "gaming",
		StreamSchedule:   "daily",
		Goals:            "I want to grow my channel",
		Challenges:       "Not enough viewers yet",
	}
	require.NoError(t, repo.Create(ctx, app))

	found, err := repo.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.Goals, found.Goals)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func TestAnalyticsRepository_CountsAndTodayBoundary(t *testing.T) {
	store := NewStore()
	repo := NewAnalyticsRepository(store)
	ctx := context.Background()

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	require.NoError(t, repo.CreatePageView(ctx, &entity.PageView{Path: "/", CreatedAt: startOfDay.Add(-time.Minute)}))
	require.NoError(t, repo.CreatePageView(ctx, &entity.PageView{Path: "/", CreatedAt: startOfDay}))
	require.NoError(t, repo.CreatePageView(ctx, &entity.PageView{Path: "/apply", CreatedAt: now}))

	total, err := repo.CountPageViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	today, err := repo.CountPageViewsSince(ctx, startOfDay)
	require.NoError(t, err)
	// The record created exactly at midnight counts; yesterday's does not.
	assert.Equal(t, int64(2), today)

	require.NoError(t, repo.CreateChatInteraction(ctx, &entity.ChatInteraction{
		UserMessage: "hi", BotResponse: "hello", CreatedAt: startOfDay.Add(-time.Hour),
	}))
	chatToday, err := repo.CountChatInteractionsSince(ctx, startOfDay)
	require.NoError(t, err)
	assert.Equal(t, int64(0), chatToday)

	chatTotal, err := repo.CountChatInteractions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), chatTotal)
}

func TestSessionRepository_LifetimeAndIdempotency(t *testing.T) {
	store := NewStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	session := &entity.Session{
		AccountID: uuid.New(),
		TokenHash: "hash-1",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, session.AccountID, found.AccountID)

	require.NoError(t, repo.DeleteByTokenHash(ctx, "hash-1"))
	err = repo.DeleteByTokenHash(ctx, "hash-1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_ExpiredSession(t *testing.T) {
	store := NewStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Session{
		AccountID: uuid.New(),
		TokenHash: "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := repo.FindByTokenHash(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrSessionExpired)

	require.NoError(t, repo.DeleteExpired(ctx))
	_, err = repo.FindByTokenHash(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
