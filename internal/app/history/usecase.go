package history

import (
	"context"
	"errors"
	"strings"

	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"
)

const defaultLimit = 20

var ErrInvalidRequest = errors.New("invalid history request")

type UseCase struct {
	Events       ports.EventRepository
	DefaultLimit int
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.AgentID) == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = u.DefaultLimit
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	events, err := u.Events.ListByAgentID(ctx, strings.TrimSpace(req.AgentID), limit)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	if events == nil {
		events = []ports.PlanEvent{}
	}
	return Response{Events: events, Summary: summarize(events)}, nil
}

func filterByTimeWindow(events []ports.PlanEvent, from, to int64) []ports.PlanEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]ports.PlanEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// summarize expects events newest first.
func summarize(events []ports.PlanEvent) Summary {
	s := Summary{Total: len(events)}
	for _, evt := range events {
		if evt.Type == ports.EventPlanUnreachable {
			s.Unreachable++
		}
		if s.LastTarget != nil {
			continue
		}
		if target, ok := evt.Payload["target"].(map[string]any); ok {
			s.LastTarget = &pathfinding.Position{X: int(num(target["x"])), Y: int(num(target["y"]))}
		}
	}
	return s
}

// num normalizes payload numbers; persisted payloads come back as float64.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
