package memory

import (
	"sync"

	"snakepath/internal/app/ports"
)

// Store keeps plans and events in process. txMu serializes transactions, mu
// guards the maps for every single operation.
type Store struct {
	txMu   sync.Mutex
	mu     sync.RWMutex
	plans  map[string]ports.PlanRecord
	events map[string][]ports.PlanEvent
}

func NewStore() *Store {
	return &Store{
		plans:  make(map[string]ports.PlanRecord),
		events: make(map[string][]ports.PlanEvent),
	}
}

func planKey(agentID, key string) string {
	return agentID + "::" + key
}
