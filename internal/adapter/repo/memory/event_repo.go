package memory

import (
	"context"

	"snakepath/internal/app/ports"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, agentID string, events []ports.PlanEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[agentID] = append(r.store.events[agentID], events...)
	return nil
}

// ListByAgentID returns the newest events first.
func (r EventRepo) ListByAgentID(_ context.Context, agentID string, limit int) ([]ports.PlanEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stored := r.store.events[agentID]
	if len(stored) == 0 {
		return nil, ports.ErrNotFound
	}
	n := len(stored)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ports.PlanEvent, 0, n)
	for i := len(stored) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}
