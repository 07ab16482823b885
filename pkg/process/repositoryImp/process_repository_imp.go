package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/process/repository"
)

type processRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProcessRepository { return &processRepo{db} }

func (r *processRepo) Create(ctx context.Context, p *entities.Process) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *processRepo) FindByID(ctx context.Context, id uint) (*entities.Process, error) {
	var p entities.Process
	if err := r.db.WithContext(ctx).Where("process_id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("process %d: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (r *processRepo) ListByLot(ctx context.Context, lotID uint) ([]entities.Process, error) {
	var out []entities.Process
	if err := r.db.WithContext(ctx).
		Where("lot_id = ?", lotID).
		Order("washed_at DESC").Order("process_id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
