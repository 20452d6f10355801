package memory

import (
	"context"
	"time"

	"hypeup/internal/domain/entity"
	"hypeup/internal/domain/repository"

	"github.com/google/uuid"
)

// sessionRepository implements repository.SessionRepository over the shared Store.
// Sessions held here do not survive a restart; that is the documented
// trade-off of running on the memory driver.
type sessionRepository struct {
	store *Store
}

// NewSessionRepository is the constructor for the in-memory sessionRepository.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// Create persists a new session, representing a dashboard login.
func (repo *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	copied := *session
	repo.store.sessions[session.TokenHash] = &copied

	return nil
}

// FindByTokenHash retrieves a session by its stored token hash.
func (repo *sessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	session, ok := repo.store.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	copied := *session

	return &copied, nil
}

// DeleteByTokenHash removes a session by its token hash, ending the login.
func (repo *sessionRepository) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.sessions[tokenHash]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(repo.store.sessions, tokenHash)

	return nil
}

// DeleteExpired removes all sessions past their absolute lifetime.
func (repo *sessionRepository) DeleteExpired(_ context.Context) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := time.Now()
	for hash, session := range repo.store.sessions {
		if session.Expired(now) {
			delete(repo.store.sessions, hash)
		}
	}

	return nil
}
