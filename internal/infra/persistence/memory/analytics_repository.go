package memory

import (
	"context"
	"time"

	"hypeup/internal/domain/entity"
	"hypeup/internal/domain/repository"

	"github.com/google/uuid"
)

// analyticsRepository implements repository.AnalyticsRepository over the shared Store.
type analyticsRepository struct {
	store *Store
}

// NewAnalyticsRepository is the constructor for the in-memory analyticsRepository.
func NewAnalyticsRepository(store *Store) repository.AnalyticsRepository {
	return &analyticsRepository{store: store}
}

// CreatePageView persists a single page visit.
func (repo *analyticsRepository) CreatePageView(_ context.Context, view *entity.PageView) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if view.ID == uuid.Nil {
		view.ID = uuid.New()
	}
	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now()
	}

	copied := *view
	repo.store.pageViews = append(repo.store.pageViews, &copied)

	return nil
}

// CreateChatInteraction persists a single chatbot exchange.
func (repo *analyticsRepository) CreateChatInteraction(_ context.Context, interaction *entity.ChatInteraction) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if interaction.ID == uuid.Nil {
		interaction.ID = uuid.New()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now()
	}

	copied := *interaction
	repo.store.interactions = append(repo.store.interactions, &copied)

	return nil
}

// CountPageViews returns the exact number of stored page views.
func (repo *analyticsRepository) CountPageViews(_ context.Context) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return int64(len(repo.store.pageViews)), nil
}

// CountPageViewsSince counts page views with CreatedAt at or after since.
func (repo *analyticsRepository) CountPageViewsSince(_ context.Context, since time.Time) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var count int64
	for _, view := range repo.store.pageViews {
		if !view.CreatedAt.Before(since) {
			count++
		}
	}

	return count, nil
}

// CountChatInteractions returns the exact number of stored chatbot exchanges.
func (repo *analyticsRepository) CountChatInteractions(_ context.Context) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return int64(len(repo.store.interactions)), nil
}

// CountChatInteractionsSince counts chatbot exchanges with CreatedAt at or after since.
func (repo *analyticsRepository) CountChatInteractionsSince(_ context.Context, since time.Time) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var count int64
	for _, interaction := range repo.store.interactions {
		if !interaction.CreatedAt.Before(since) {
			count++
		}
	}

	return count, nil
}
