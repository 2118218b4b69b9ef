package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

// DefaultHistorySize bounds how many runs the in-memory history keeps.
const DefaultHistorySize = 1000

// SimulationRepositoryMemory keeps the most recent runs in memory.
// Nothing survives a restart.
type SimulationRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	data     map[string]domain.SimulationRecord
}

// NewSimulationRepositoryMemory creates a history holding at most capacity runs.
// The oldest run is evicted first.
func NewSimulationRepositoryMemory(capacity int) *SimulationRepositoryMemory {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &SimulationRepositoryMemory{
		capacity: capacity,
		data:     make(map[string]domain.SimulationRecord),
	}
}

// Save stores the run and returns its new ID.
func (r *SimulationRepositoryMemory) Save(
	params domain.SimulationParameters,
	result domain.SimulationResult,
) (string, error) {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.order) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.data, oldest)
	}

	r.order = append(r.order, id)
	r.data[id] = domain.SimulationRecord{ID: id, Params: params, Result: result}
	return id, nil
}

func (r *SimulationRepositoryMemory) FindByID(id string) (domain.SimulationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.data[id]
	if !ok {
		return domain.SimulationRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r *SimulationRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
