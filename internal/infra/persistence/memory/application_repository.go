package memory

import (
	"context"
	"sort"
	"time"

	"hypeup/internal/domain/entity"
	"hypeup/internal/domain/repository"

	"github.com/google/uuid"
)

// applicationRepository implements repository.ApplicationRepository over the shared Store.
type applicationRepository struct {
	store *Store
}

// NewApplicationRepository is the constructor for the in-memory applicationRepository.
func NewApplicationRepository(store *Store) repository.ApplicationRepository {
	return &applicationRepository{store: store}
}

// Create persists a new streamer application, assigning its ID and CreatedAt.
func (repo *applicationRepository) Create(_ context.Context, application *entity.StreamerApplication) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	if application.CreatedAt.IsZero() {
		application.CreatedAt = time.Now()
	}

	copied := *application
	repo.store.applications = append(repo.store.applications, &copied)

	return nil
}

// FindByID retrieves a single application by its unique ID.
func (repo *applicationRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.StreamerApplication, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, application := range repo.store.applications {
		if application.ID == id {
			copied := *application

			return &copied, nil
		}
	}

	return nil, repository.ErrApplicationNotFound
}

// ListAll returns every stored application, newest first.
func (repo *applicationRepository) ListAll(ctx context.Context) ([]*entity.StreamerApplication, error) {
	return repo.ListRecent(ctx, 0)
}

// ListRecent returns at most limit applications, newest first.
// A limit of zero means no limit.
func (repo *applicationRepository) ListRecent(_ context.Context, limit int) ([]*entity.StreamerApplication, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	applications := make([]*entity.StreamerApplication, 0, len(repo.store.applications))
	for _, application := range repo.store.applications {
		copied := *application
		applications = append(applications, &copied)
	}

	sort.SliceStable(applications, func(i, j int) bool {
		return applications[i].CreatedAt.After(applications[j].CreatedAt)
	})

	if limit > 0 && len(applications) > limit {
		applications = applications[:limit]
	}

	return applications, nil
}

// Count returns the exact number of stored applications.
func (repo *applicationRepository) Count(_ context.Context) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return int64(len(repo.store.applications)), nil
}
