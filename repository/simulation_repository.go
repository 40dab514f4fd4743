package repository

import (
	"context"
	"errors"

	"sci-simulator/domain"
)

var ErrSimulationNotFound = errors.New("simulation not found")

type SimulationRepository interface {
	Save(ctx context.Context, simulation domain.Simulation) error
	FindByID(ctx context.Context, id string) (domain.Simulation, error)
	List(ctx context.Context) ([]domain.Simulation, error)
}
