package repository

import (
	"context"
	"sync"

	"sci-simulator/domain"
)

// SimulationRepositoryMemory is an in-memory implementation of
// SimulationRepository. Simulations are listed in insertion order.
type SimulationRepositoryMemory struct {
	mu    sync.RWMutex
	order []string
	data  map[string]domain.Simulation
}

// NewSimulationRepositoryMemory creates an empty in-memory store.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		data: make(map[string]domain.Simulation),
	}
}

// Save stores the simulation, replacing any previous one with the same ID.
func (r *SimulationRepositoryMemory) Save(
	_ context.Context,
	simulation domain.Simulation,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[simulation.ID]; !exists {
		r.order = append(r.order, simulation.ID)
	}
	r.data[simulation.ID] = simulation
	return nil
}

func (r *SimulationRepositoryMemory) FindByID(
	_ context.Context,
	id string,
) (domain.Simulation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	simulation, ok := r.data[id]
	if !ok {
		return domain.Simulation{}, ErrSimulationNotFound
	}
	return simulation, nil
}

func (r *SimulationRepositoryMemory) List(_ context.Context) ([]domain.Simulation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Simulation, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.data[id])
	}
	return out, nil
}
