// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hypeup/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApplicationNotFound is returned when a streamer application does not exist.
var ErrApplicationNotFound = errors.New("streamer application not found")

// ApplicationRepository defines the operations for streamer application
// persistence. Applications are append-only: there is no update or delete.
type ApplicationRepository interface {
	// Create persists a new application, assigning its ID and CreatedAt.
	// The stored record is written back into the passed entity.
	Create(ctx context.Context, application *entity.StreamerApplication) error

	// FindByID retrieves a single application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StreamerApplication, error)

	// ListAll returns every stored application, newest first.
	ListAll(ctx context.Context) ([]*entity.StreamerApplication, error)

	// ListRecent returns at most limit applications, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.StreamerApplication, error)

	// Count returns the exact number of stored applications.
	Count(ctx context.Context) (int64, error)
}
