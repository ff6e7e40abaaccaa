package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"snakepath/internal/adapter/repo/gorm/model"
	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"

	"gorm.io/gorm"
)

type PlanRepo struct {
	db *gorm.DB
}

func NewPlanRepo(db *gorm.DB) PlanRepo {
	return PlanRepo{db: db}
}

func (r PlanRepo) GetByIdempotencyKey(ctx context.Context, agentID, key string) (*ports.PlanRecord, error) {
	var m model.Plan
	err := dbFrom(ctx, r.db).
		Where(&model.Plan{AgentID: agentID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	rec, err := decodePlan(m)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r PlanRepo) Save(ctx context.Context, rec ports.PlanRecord) error {
	directions := rec.Directions
	if directions == nil {
		directions = []pathfinding.Direction{}
	}
	directionsJSON, err := json.Marshal(directions)
	if err != nil {
		return fmt.Errorf("encode directions: %w", err)
	}
	m := model.Plan{
		AgentID:        rec.AgentID,
		IdempotencyKey: rec.IdempotencyKey,
		HeadX:          int32(rec.Head.X),
		HeadY:          int32(rec.Head.Y),
		BodyLength:     int32(rec.BodyLength),
		TargetX:        int32(rec.Target.X),
		TargetY:        int32(rec.Target.Y),
		Directions:     directionsJSON,
		Reachable:      rec.Reachable,
		PlannedAt:      rec.PlannedAt,
	}
	if err := dbFrom(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func decodePlan(m model.Plan) (ports.PlanRecord, error) {
	var directions []pathfinding.Direction
	if len(m.Directions) > 0 {
		if err := json.Unmarshal(m.Directions, &directions); err != nil {
			return ports.PlanRecord{}, fmt.Errorf("decode directions of plan %d: %w", m.ID, err)
		}
	}
	return ports.PlanRecord{
		AgentID:        m.AgentID,
		IdempotencyKey: m.IdempotencyKey,
		Head:           pathfinding.Position{X: int(m.HeadX), Y: int(m.HeadY)},
		BodyLength:     int(m.BodyLength),
		Target:         pathfinding.Position{X: int(m.TargetX), Y: int(m.TargetY)},
		Directions:     directions,
		Reachable:      m.Reachable,
		PlannedAt:      m.PlannedAt,
	}, nil
}
