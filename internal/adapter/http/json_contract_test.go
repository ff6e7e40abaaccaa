package httpadapter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"snakepath/internal/app/history"
	"snakepath/internal/app/plan"
	"snakepath/internal/app/ports"
	"snakepath/internal/domain/pathfinding"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	next := pathfinding.DirectionUp

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name: "plan",
			payload: plan.Response{
				Directions:    []pathfinding.Direction{pathfinding.DirectionUp},
				NextDirection: &next,
				Length:        1,
				Reachable:     true,
				PlannedAt:     now,
			},
			want:    []string{`"directions":["up"]`, `"next_direction":"up"`, `"already_at_target"`, `"planned_at"`, `"replayed"`},
			notWant: []string{`"NextDirection"`, `"AlreadyAtTarget"`},
		},
		{
			name: "history",
			payload: history.Response{
				Events: []ports.PlanEvent{{Type: ports.EventPlanComputed, OccurredAt: now, Payload: map[string]any{"length": 1}}},
				Summary: history.Summary{
					Total:      1,
					LastTarget: &pathfinding.Position{X: 1, Y: 2},
				},
			},
			want:    []string{`"occurred_at"`, `"last_target":{"x":1,"y":2}`, `"unreachable"`},
			notWant: []string{`"OccurredAt"`, `"LastTarget"`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			s := string(b)
			for _, key := range tc.want {
				if !strings.Contains(s, key) {
					t.Fatalf("expected %s in %s", key, s)
				}
			}
			for _, key := range tc.notWant {
				if strings.Contains(s, key) {
					t.Fatalf("unexpected %s in %s", key, s)
				}
			}
		})
	}
}
