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

// applicationRepository implements the repository.ApplicationRepository interface using GORM.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create persists a new streamer application as a single atomic insert.
func (repo *applicationRepository) Create(ctx context.Context, application *entity.StreamerApplication) error {
	applicationM := fromApplicationDomain(application)
	if applicationM.ID == uuid.Nil {
		applicationM.ID = uuid.New()
	}
	if applicationM.CreatedAt.IsZero() {
		applicationM.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create streamer application")
	}

	application.ID = applicationM.ID
	application.CreatedAt = applicationM.CreatedAt

	return nil
}

// FindByID retrieves a single application by its unique ID.
func (repo *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StreamerApplication, error) {
	var applicationM model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by id")
	}

	return toApplicationDomain(&applicationM), nil
}

// ListAll returns every stored application, newest first.
func (repo *applicationRepository) ListAll(ctx context.Context) ([]*entity.StreamerApplication, error) {
	var applicationModels []*model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return toApplicationDomains(applicationModels), nil
}

// ListRecent returns at most limit applications, newest first.
func (repo *applicationRepository) ListRecent(ctx context.Context, limit int) ([]*entity.StreamerApplication, error) {
	var applicationModels []*model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent applications")
	}

	return toApplicationDomains(applicationModels), nil
}

// Count returns the exact number of stored applications.
func (repo *applicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count applications")
	}

	return count, nil
}

// --- Mapper Functions ---

// toApplicationDomain converts a GORM ApplicationModel to a domain StreamerApplication entity.
func toApplicationDomain(data *model.ApplicationModel) *entity.StreamerApplication {
	if data == nil {
		return nil
	}

	return &entity.StreamerApplication{
		ID:               data.ID,
		TelegramUserID:   data.TelegramUserID,
		TelegramUsername: data.TelegramUsername,
		TwitchChannel:    data.TwitchChannel,
		YoutubeChannel:   data.YoutubeChannel,
		ContentType:      data.ContentType,
		StreamSchedule:   data.StreamSchedule,
		Goals:            data.Goals,
		Challenges:       data.Challenges,
		SocialMedia:      data.SocialMedia,
		CreatedAt:        data.CreatedAt,
	}
}

func toApplicationDomains(data []*model.ApplicationModel) []*entity.StreamerApplication {
	applications := make([]*entity.StreamerApplication, 0, len(data))
	for _, applicationM := range data {
		applications = append(applications, toApplicationDomain(applicationM))
	}

	return applications
}

// fromApplicationDomain converts a domain StreamerApplication entity to a GORM ApplicationModel.
func fromApplicationDomain(data *entity.StreamerApplication) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:               data.ID,
		TelegramUserID:   data.TelegramUserID,
		TelegramUsername: data.TelegramUsername,
		TwitchChannel:    data.TwitchChannel,
		YoutubeChannel:   data.YoutubeChannel,
		ContentType:      data.ContentType,
		StreamSchedule:   data.StreamSchedule,
		Goals:            data.Goals,
		Challenges:       data.Challenges,
		SocialMedia:      data.SocialMedia,
		CreatedAt:        data.CreatedAt,
	}
}
