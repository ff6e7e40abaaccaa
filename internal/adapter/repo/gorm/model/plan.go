package model

import "time"

const TableNamePlan = "plans"

type Plan struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement:true"`
	AgentID        string    `gorm:"column:agent_id;not null"`
	IdempotencyKey string    `gorm:"column:idempotency_key;not null"`
	HeadX          int32     `gorm:"column:head_x;not null"`
	HeadY          int32     `gorm:"column:head_y;not null"`
	BodyLength     int32     `gorm:"column:body_length;not null"`
	TargetX        int32     `gorm:"column:target_x;not null"`
	TargetY        int32     `gorm:"column:target_y;not null"`
	Directions     []byte    `gorm:"column:directions;type:jsonb;not null"`
	Reachable      bool      `gorm:"column:reachable;not null"`
	PlannedAt      time.Time `gorm:"column:planned_at;not null"`
}

func (*Plan) TableName() string {
	return TableNamePlan
}
