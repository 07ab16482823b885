package repository

import (
	"context"

	"traza/entities"
)

type QualityRepository interface {
	Create(ctx context.Context, q *entities.QualityControl) error
	// ListByProcess orders by control time, latest first.
	ListByProcess(ctx context.Context, processID uint) ([]entities.QualityControl, error)
}
