package repository

import (
	"context"

	"traza/entities"
)

type TransportRepository interface {
	Create(ctx context.Context, t *entities.Transport) error
	Update(ctx context.Context, t *entities.Transport) error
	FindByID(ctx context.Context, id uint) (*entities.Transport, error)
	// ListByLot orders by departure, latest first.
	ListByLot(ctx context.Context, lotID uint) ([]entities.Transport, error)
}
