package repository

import (
	"context"

	"traza/entities"
)

type LotRepository interface {
	Create(ctx context.Context, l *entities.Lot) error
	FindByID(ctx context.Context, id uint) (*entities.Lot, error)
	FindByCode(ctx context.Context, code string) (*entities.Lot, error)
	ExistsCode(ctx context.Context, code string) (bool, error)
	// List returns lots by harvest date, most recent first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]entities.Lot, error)
	// Delete removes the lot with its processes, their controls and its transports.
	Delete(ctx context.Context, id uint) error
}
