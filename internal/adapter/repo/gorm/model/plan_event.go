package model

import "time"

const TableNamePlanEvent = "plan_events"

type PlanEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:true"`
	AgentID    string    `gorm:"column:agent_id;not null"`
	Type       string    `gorm:"column:type;not null"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null"`
	Payload    []byte    `gorm:"column:payload;type:jsonb;not null"`
}

func (*PlanEvent) TableName() string {
	return TableNamePlanEvent
}
