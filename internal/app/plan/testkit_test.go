package plan

import (
	"context"

	"snakepath/internal/app/ports"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPlanRepo struct {
	byKey   map[string]ports.PlanRecord
	saved   []ports.PlanRecord
	saveErr error
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{byKey: map[string]ports.PlanRecord{}}
}

func (r *stubPlanRepo) GetByIdempotencyKey(_ context.Context, agentID, key string) (*ports.PlanRecord, error) {
	rec, ok := r.byKey[agentID+"|"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	return &copy, nil
}

func (r *stubPlanRepo) Save(_ context.Context, rec ports.PlanRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, rec)
	if rec.IdempotencyKey != "" {
		r.byKey[rec.AgentID+"|"+rec.IdempotencyKey] = rec
	}
	return nil
}

type stubEventRepo struct {
	events []ports.PlanEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []ports.PlanEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByAgentID(_ context.Context, _ string, _ int) ([]ports.PlanEvent, error) {
	return r.events, nil
}

type stubMetrics struct {
	success     int
	unreachable int
	conflict    int
	failure     int
	lengths     []int
}

func (m *stubMetrics) RecordSuccess(pathLength int) {
	m.success++
	m.lengths = append(m.lengths, pathLength)
}

func (m *stubMetrics) RecordUnreachable() { m.unreachable++ }
func (m *stubMetrics) RecordConflict()    { m.conflict++ }
func (m *stubMetrics) RecordFailure()     { m.failure++ }
