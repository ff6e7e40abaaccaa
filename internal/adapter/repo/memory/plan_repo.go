package memory

import (
	"context"
	"slices"

	"snakepath/internal/app/ports"
)

type PlanRepo struct {
	store *Store
}

func NewPlanRepo(store *Store) PlanRepo {
	return PlanRepo{store: store}
}

func (r PlanRepo) GetByIdempotencyKey(_ context.Context, agentID, key string) (*ports.PlanRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.plans[planKey(agentID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	copy.Directions = slices.Clone(rec.Directions)
	return &copy, nil
}

// Save stores keyed plans only; plans without an idempotency key are recorded
// through their events.
func (r PlanRepo) Save(_ context.Context, rec ports.PlanRecord) error {
	if rec.IdempotencyKey == "" {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	k := planKey(rec.AgentID, rec.IdempotencyKey)
	if _, exists := r.store.plans[k]; exists {
		return ports.ErrConflict
	}
	rec.Directions = slices.Clone(rec.Directions)
	r.store.plans[k] = rec
	return nil
}
