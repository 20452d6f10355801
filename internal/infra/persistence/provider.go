// Package persistence selects the storage backend at startup. Both
// backends satisfy the same repository interfaces; nothing outside this
// package knows which one is running.
package persistence

import (
	"log/slog"

	"hypeup/config"
	"hypeup/internal/domain/repository"
	"hypeup/internal/errors"
	"hypeup/internal/infra/persistence/memory"
	"hypeup/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Driver names accepted in config.Storage.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories bundles the four repository implementations for fx.
type Repositories struct {
	fx.Out

	Accounts     repository.AccountRepository
	Applications repository.ApplicationRepository
	Analytics    repository.AnalyticsRepository
	Sessions     repository.SessionRepository
}

// New builds the repository set for the configured driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, errors.Wrap(err, "failed to initialize postgres storage")
		}

		return Repositories{
			Accounts:     postgres.NewAccountRepository(db),
			Applications: postgres.NewApplicationRepository(db),
			Analytics:    postgres.NewAnalyticsRepository(db),
			Sessions:     postgres.NewSessionRepository(db),
		}, nil

	case DriverMemory:
		store := memory.NewStore()

		return Repositories{
			Accounts:     memory.NewAccountRepository(store),
			Applications: memory.NewApplicationRepository(store),
			Analytics:    memory.NewAnalyticsRepository(store),
			Sessions:     memory.NewSessionRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
