package repository

import (
	"errors"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

var ErrNotFound = errors.New("simulation not found")

type SimulationRepository interface {
	Save(params domain.SimulationParameters, result domain.SimulationResult) (string, error)
	FindByID(id string) (domain.SimulationRecord, error)
}
