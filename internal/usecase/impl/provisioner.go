// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"hypeup/config"
	"hypeup/internal/domain/entity"
	"hypeup/internal/domain/repository"

	"github.com/pkg/errors"
)

// EnsureAdminAccount creates the configured administrator account if it
// does not exist yet. Runs at startup, after the store is ready. An
// already-provisioned account is left untouched, even when the
// configured password has changed; rotating the credential means
// updating the stored account out of band.
func EnsureAdminAccount(ctx context.Context, cfg *config.Config, accountRepo repository.AccountRepository, logger *slog.Logger) error {
	_, err := accountRepo.FindByUsername(ctx, cfg.Admin.Username)
	if err == nil {
		logger.Debug("Admin account already provisioned", slog.String("username", cfg.Admin.Username))

		return nil
	}

	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to look up admin account")
	}

	account := &entity.Account{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Role:     entity.RoleAdmin,
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		return errors.Wrap(err, "failed to provision admin account")
	}

	logger.Info("Provisioned admin account", slog.String("username", account.Username))

	return nil
}
