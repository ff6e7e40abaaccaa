package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"
)

var ErrInvalidRequest = errors.New("invalid plan request")

type UseCase struct {
	Planner   pathfinding.Planner
	TxManager ports.TxManager
	Plans     ports.PlanRepository
	Events    ports.EventRepository
	Metrics   ports.PlanMetrics
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.AgentID = strings.TrimSpace(req.AgentID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.AgentID == "" || len(req.Body) == 0 {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if req.IdempotencyKey != "" {
			rec, err := u.Plans.GetByIdempotencyKey(txCtx, req.AgentID, req.IdempotencyKey)
			if err == nil && rec != nil {
				out = responseFromRecord(*rec)
				out.Replayed = true
				return nil
			}
			if err != nil && !errors.Is(err, ports.ErrNotFound) {
				return err
			}
		}

		directions, err := u.Planner.FindPath(req.Body, req.Target)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}

		head := req.Body[0]
		rec := ports.PlanRecord{
			AgentID:        req.AgentID,
			IdempotencyKey: req.IdempotencyKey,
			Head:           head,
			BodyLength:     len(req.Body),
			Target:         req.Target,
			Directions:     directions,
			Reachable:      len(directions) > 0 || head == req.Target,
			PlannedAt:      nowFn(),
		}
		if err := u.Plans.Save(txCtx, rec); err != nil {
			return err
		}
		if err := u.Events.Append(txCtx, req.AgentID, []ports.PlanEvent{planEvent(rec)}); err != nil {
			return err
		}
		out = responseFromRecord(rec)
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil && !out.Replayed {
		if out.Reachable {
			u.Metrics.RecordSuccess(out.Length)
		} else {
			u.Metrics.RecordUnreachable()
		}
	}
	return out, nil
}

func responseFromRecord(rec ports.PlanRecord) Response {
	directions := rec.Directions
	if directions == nil {
		directions = []pathfinding.Direction{}
	}
	out := Response{
		Directions:      directions,
		Length:          len(directions),
		Reachable:       rec.Reachable,
		AlreadyAtTarget: rec.Head == rec.Target,
		PlannedAt:       rec.PlannedAt,
	}
	if len(directions) > 0 {
		next := directions[0]
		out.NextDirection = &next
	}
	return out
}

func planEvent(rec ports.PlanRecord) ports.PlanEvent {
	eventType := ports.EventPlanComputed
	if !rec.Reachable {
		eventType = ports.EventPlanUnreachable
	}
	moves := make([]string, 0, len(rec.Directions))
	for _, d := range rec.Directions {
		moves = append(moves, string(d))
	}
	return ports.PlanEvent{
		Type:       eventType,
		OccurredAt: rec.PlannedAt,
		Payload: map[string]any{
			"agent_id":    rec.AgentID,
			"head":        map[string]any{"x": rec.Head.X, "y": rec.Head.Y},
			"target":      map[string]any{"x": rec.Target.X, "y": rec.Target.Y},
			"body_length": rec.BodyLength,
			"length":      len(rec.Directions),
			"directions":  moves,
		},
	}
}
