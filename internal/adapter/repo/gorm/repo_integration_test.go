package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"

	"gorm.io/gorm"
)

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("PLANNER_DB_DSN")
	if dsn == "" {
		t.Skip("PLANNER_DB_DSN is required for integration test")
	}
	db, err := OpenPostgres(dsn, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	fsys, err := Migrations("")
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if err := ApplyMigrations(context.Background(), db, fsys); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestPlanRepo_RoundTripAndConflict(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	agentID := "it-plan-roundtrip"
	_ = db.Exec("DELETE FROM plans WHERE agent_id = ?", agentID).Error

	repo := NewPlanRepo(db)
	rec := ports.PlanRecord{
		AgentID:        agentID,
		IdempotencyKey: "k1",
		Head:           pathfinding.Position{X: 1, Y: 2},
		BodyLength:     3,
		Target:         pathfinding.Position{X: 1, Y: 4},
		Directions:     []pathfinding.Direction{pathfinding.DirectionUp, pathfinding.DirectionUp},
		Reachable:      true,
		PlannedAt:      time.Unix(1700000000, 0).UTC(),
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, rec); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate key, got %v", err)
	}

	got, err := repo.GetByIdempotencyKey(ctx, agentID, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Head != rec.Head || got.Target != rec.Target || got.BodyLength != 3 || !got.Reachable {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", *got, rec)
	}
	if len(got.Directions) != 2 || got.Directions[0] != pathfinding.DirectionUp {
		t.Fatalf("directions mismatch: %v", got.Directions)
	}

	if _, err := repo.GetByIdempotencyKey(ctx, agentID, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventRepo_NewestFirstInsideTx(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	agentID := "it-plan-events"
	_ = db.Exec("DELETE FROM plan_events WHERE agent_id = ?", agentID).Error

	repo := NewEventRepo(db)
	tx := NewTxManager(db)
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		return repo.Append(txCtx, agentID, []ports.PlanEvent{
			{Type: ports.EventPlanComputed, OccurredAt: time.Unix(100, 0), Payload: map[string]any{"length": 3}},
			{Type: ports.EventPlanUnreachable, OccurredAt: time.Unix(200, 0)},
		})
	})
	if err != nil {
		t.Fatalf("append in tx: %v", err)
	}

	events, err := repo.ListByAgentID(ctx, agentID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 || events[0].Type != ports.EventPlanUnreachable {
		t.Fatalf("expected newest first, got %+v", events)
	}
	if got := events[1].Payload["length"]; got != 3.0 {
		t.Fatalf("payload mismatch: got=%v", got)
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	agentID := "it-plan-rollback"
	_ = db.Exec("DELETE FROM plan_events WHERE agent_id = ?", agentID).Error

	repo := NewEventRepo(db)
	wantErr := errors.New("boom")
	err := NewTxManager(db).RunInTx(ctx, func(txCtx context.Context) error {
		if err := repo.Append(txCtx, agentID, []ports.PlanEvent{{Type: ports.EventPlanComputed, OccurredAt: time.Now()}}); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if _, err := repo.ListByAgentID(ctx, agentID, 10); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected rolled back events, got %v", err)
	}
}
