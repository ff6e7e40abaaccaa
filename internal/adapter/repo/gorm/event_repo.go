package gormrepo

import (
	"context"
	"encoding/json"

	"snakepath/internal/adapter/repo/gorm/model"
	"snakepath/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, agentID string, events []ports.PlanEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.PlanEvent, 0, len(events))
	for _, e := range events {
		payload := e.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		b, _ := json.Marshal(payload)
		rows = append(rows, model.PlanEvent{
			AgentID:    agentID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return dbFrom(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByAgentID(ctx context.Context, agentID string, limit int) ([]ports.PlanEvent, error) {
	rows := []model.PlanEvent{}
	query := dbFrom(ctx, r.db).
		Where(&model.PlanEvent{AgentID: agentID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.PlanEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, ports.PlanEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
