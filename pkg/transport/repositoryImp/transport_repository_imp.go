package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/transport/repository"
)

type transportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TransportRepository { return &transportRepo{db} }

func (r *transportRepo) Create(ctx context.Context, t *entities.Transport) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transportRepo) Update(ctx context.Context, t *entities.Transport) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *transportRepo) FindByID(ctx context.Context, id uint) (*entities.Transport, error) {
	var t entities.Transport
	if err := r.db.WithContext(ctx).Where("transport_id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transport %d: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &t, nil
}

func (r *transportRepo) ListByLot(ctx context.Context, lotID uint) ([]entities.Transport, error) {
	var out []entities.Transport
	if err := r.db.WithContext(ctx).
		Where("lot_id = ?", lotID).
		Order("departed_at DESC").Order("transport_id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
