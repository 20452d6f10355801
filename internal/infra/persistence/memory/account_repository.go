package memory

import (
	"context"
	"time"

	"hypeup/internal/domain/entity"
	domainerrors "hypeup/internal/domain/errors"
	"hypeup/internal/domain/repository"

	"github.com/google/uuid"
)

// accountRepository implements repository.AccountRepository over the shared Store.
type accountRepository struct {
	store *Store
}

// NewAccountRepository is the constructor for the in-memory accountRepository.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	account, ok := repo.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	copied := *account

	return &copied, nil
}

// FindByUsername retrieves a single account by its unique username.
func (repo *accountRepository) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, account := range repo.store.accounts {
		if account.Username == username {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// Create persists a new account.
func (repo *accountRepository) Create(_ context.Context, account *entity.Account) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.accounts {
		if existing.Username == account.Username {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username already exists")
		}
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	copied := *account
	repo.store.accounts[account.ID] = &copied

	return nil
}
