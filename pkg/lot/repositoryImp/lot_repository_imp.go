package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/lot/repository"
)

type lotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LotRepository { return &lotRepo{db} }

func (r *lotRepo) Create(ctx context.Context, l *entities.Lot) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lotRepo) FindByID(ctx context.Context, id uint) (*entities.Lot, error) {
	var l entities.Lot
	if err := r.db.WithContext(ctx).Where("lot_id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lot %d: %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &l, nil
}

func (r *lotRepo) FindByCode(ctx context.Context, code string) (*entities.Lot, error) {
	var l entities.Lot
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lot %q: %w", code, apperr.ErrNotFound)
		}
		return nil, err
	}
	return &l, nil
}

func (r *lotRepo) ExistsCode(ctx context.Context, code string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entities.Lot{}).Where("code = ?", code).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *lotRepo) List(ctx context.Context, limit int) ([]entities.Lot, error) {
	var out []entities.Lot
	q := r.db.WithContext(ctx).Order("harvest_date DESC").Order("lot_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *lotRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		processIDs := tx.Model(&entities.Process{}).Select("process_id").Where("lot_id = ?", id)
		if err := tx.Where("process_id IN (?)", processIDs).Delete(&entities.QualityControl{}).Error; err != nil {
			return fmt.Errorf("delete quality controls: %w", err)
		}
		if err := tx.Where("lot_id = ?", id).Delete(&entities.Transport{}).Error; err != nil {
			return fmt.Errorf("delete transports: %w", err)
		}
		if err := tx.Where("lot_id = ?", id).Delete(&entities.Process{}).Error; err != nil {
			return fmt.Errorf("delete processes: %w", err)
		}
		res := tx.Where("lot_id = ?", id).Delete(&entities.Lot{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("lot %d: %w", id, apperr.ErrNotFound)
		}
		return nil
	})
}
