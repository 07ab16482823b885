package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"traza/entities"
	"traza/pkg/quality/repository"
)

type qualityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.QualityRepository { return &qualityRepo{db} }

func (r *qualityRepo) Create(ctx context.Context, q *entities.QualityControl) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *qualityRepo) ListByProcess(ctx context.Context, processID uint) ([]entities.QualityControl, error) {
	var out []entities.QualityControl
	if err := r.db.WithContext(ctx).
		Where("process_id = ?", processID).
		Order("controlled_at DESC").Order("control_id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
