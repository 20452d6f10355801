// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"hypeup/internal/domain/entity"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/domain/repository"
	"hypeup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository interface using GORM.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// CreatePageView persists a single page visit.
func (repo *analyticsRepository) CreatePageView(ctx context.Context, view *entity.PageView) error {
	viewM := &model.PageViewModel{
		ID:        view.ID,
		Path:      view.Path,
		UserAgent: view.UserAgent,
		IP:        view.IP,
		CreatedAt: view.CreatedAt,
	}
	if viewM.ID == uuid.Nil {
		viewM.ID = uuid.New()
	}
	if viewM.CreatedAt.IsZero() {
		viewM.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(viewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create page view")
	}

	view.ID = viewM.ID
	view.CreatedAt = viewM.CreatedAt

	return nil
}

// CreateChatInteraction persists a single chatbot exchange.
func (repo *analyticsRepository) CreateChatInteraction(ctx context.Context, interaction *entity.ChatInteraction) error {
	interactionM := &model.ChatInteractionModel{
		ID:          interaction.ID,
		UserMessage: interaction.UserMessage,
		BotResponse: interaction.BotResponse,
		CreatedAt:   interaction.CreatedAt,
	}
	if interactionM.ID == uuid.Nil {
		interactionM.ID = uuid.New()
	}
	if interactionM.CreatedAt.IsZero() {
		interactionM.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(interactionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat interaction")
	}

	interaction.ID = interactionM.ID
	interaction.CreatedAt = interactionM.CreatedAt

	return nil
}

// CountPageViews returns the exact number of stored page views.
func (repo *analyticsRepository) CountPageViews(ctx context.Context) (int64, error) {
	return repo.count(ctx, &model.PageViewModel{}, nil)
}

// CountPageViewsSince counts page views with CreatedAt at or after since.
func (repo *analyticsRepository) CountPageViewsSince(ctx context.Context, since time.Time) (int64, error) {
	return repo.count(ctx, &model.PageViewModel{}, &since)
}

// CountChatInteractions returns the exact number of stored chatbot exchanges.
func (repo *analyticsRepository) CountChatInteractions(ctx context.Context) (int64, error) {
	return repo.count(ctx, &model.ChatInteractionModel{}, nil)
}

// CountChatInteractionsSince counts chatbot exchanges with CreatedAt at or after since.
func (repo *analyticsRepository) CountChatInteractionsSince(ctx context.Context, since time.Time) (int64, error) {
	return repo.count(ctx, &model.ChatInteractionModel{}, &since)
}

func (repo *analyticsRepository) count(ctx context.Context, m any, since *time.Time) (int64, error) {
	query := repo.db.WithContext(ctx).Model(m)
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count analytics records")
	}

	return count, nil
}
