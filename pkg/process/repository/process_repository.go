package repository

import (
	"context"

	"traza/entities"
)

type ProcessRepository interface {
	Create(ctx context.Context, p *entities.Process) error
	FindByID(ctx context.Context, id uint) (*entities.Process, error)
	// ListByLot orders by wash time, latest first.
	ListByLot(ctx context.Context, lotID uint) ([]entities.Process, error)
}
