package plan

import (
	"time"

	"snakepath/internal/domain/pathfinding"
)

type Request struct {
	AgentID        string
	IdempotencyKey string
	Body           []pathfinding.Position
	Target         pathfinding.Position
}

type Response struct {
	Directions      []pathfinding.Direction `json:"directions"`
	NextDirection   *pathfinding.Direction  `json:"next_direction,omitempty"`
	Length          int                     `json:"length"`
	Reachable       bool                    `json:"reachable"`
	AlreadyAtTarget bool                    `json:"already_at_target"`
	PlannedAt       time.Time               `json:"planned_at"`
	Replayed        bool                    `json:"replayed"`
}
