// Package memory contains process-local implementations of the
// persistence interfaces. They satisfy the same contracts as the
// postgres repositories and are selected by configuration for
// zero-dependency operation; the tests use them as the storage fake.
package memory

import (
	"sync"

	"hypeup/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds all entity state behind a single mutex. Echo serves
// requests concurrently, so even the "no coordination needed" model of
// independent inserts requires the maps themselves to be guarded.
type Store struct {
	mu sync.RWMutex

	accounts     map[uuid.UUID]*entity.Account
	applications []*entity.StreamerApplication
	pageViews    []*entity.PageView
	interactions []*entity.ChatInteraction
	sessions     map[string]*entity.Session // keyed by token hash
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*entity.Account),
		sessions: make(map[string]*entity.Session),
	}
}
