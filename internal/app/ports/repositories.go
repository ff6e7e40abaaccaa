package ports

import (
	"context"
	"errors"
	"time"

	"snakepath/internal/domain/pathfinding"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// TxManager runs fn in one transaction; repositories pick it up from ctx.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PlanRecord struct {
	AgentID        string
	IdempotencyKey string
	Head           pathfinding.Position
	BodyLength     int
	Target         pathfinding.Position
	Directions     []pathfinding.Direction
	Reachable      bool
	PlannedAt      time.Time
}

type PlanRepository interface {
	GetByIdempotencyKey(ctx context.Context, agentID, key string) (*PlanRecord, error)
	Save(ctx context.Context, record PlanRecord) error
}

const (
	EventPlanComputed    = "plan_computed"
	EventPlanUnreachable = "plan_unreachable"
)

type PlanEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

type EventRepository interface {
	Append(ctx context.Context, agentID string, events []PlanEvent) error
	ListByAgentID(ctx context.Context, agentID string, limit int) ([]PlanEvent, error)
}
