package history

import (
	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"
)

type Request struct {
	AgentID      string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Summary struct {
	Total       int                   `json:"total"`
	Unreachable int                   `json:"unreachable"`
	LastTarget  *pathfinding.Position `json:"last_target,omitempty"`
}

type Response struct {
	Events  []ports.PlanEvent `json:"events"`
	Summary Summary           `json:"summary"`
}
