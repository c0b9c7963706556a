// internal/infra/database/memory_state_repository.go
package database

import (
	"context"
	"sync"

	"homework_notification_bot/internal/domain/homework"
)

// InMemoryStateRepository keeps the review state in process memory
// only. On restart the cursor is re-initialized and the duplicate
// suppression state is lost; this is the default when no DATABASE_URL
// is configured.
type InMemoryStateRepository struct {
	mu    sync.Mutex
	state *homework.ReviewState
}

func NewInMemoryStateRepository() *InMemoryStateRepository {
	return &InMemoryStateRepository{}
}

func (r *InMemoryStateRepository) Get(ctx context.Context) (*homework.ReviewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == nil {
		return nil, ErrStateNotFound
	}
	copied := *r.state
	return &copied, nil
}

func (r *InMemoryStateRepository) Save(ctx context.Context, state *homework.ReviewState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *state
	r.state = &copied
	return nil
}
