package memory

import (
	"context"
	"fmt"
	"sync"

	"creature-reviews/internal/domain/activity"
	"creature-reviews/internal/ports/storage"

	"github.com/google/uuid"
)

// activityRepo reemplaza a Mongo cuando no hay MONGO_URI (dev/tests).
type activityRepo struct {
	mu      sync.RWMutex
	entries []activity.Entry
}

// NewActivityRepo arranca con seed; las entradas sin ID reciben un uuid.
func NewActivityRepo(seed ...activity.Entry) activity.Repository {
	entries := make([]activity.Entry, 0, len(seed))
	for _, e := range seed {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		entries = append(entries, e)
	}
	return &activityRepo{entries: entries}
}

func (r *activityRepo) List(ctx context.Context) ([]activity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activity.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *activityRepo) Create(ctx context.Context, e activity.Entry) error {
	return fmt.Errorf("create activity entry: %w", storage.ErrNotImplemented)
}
