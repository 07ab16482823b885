package service

import (
	"context"

	"traza/pkg/views"
)

// LotInput carries raw registration fields. Dates may be datatypes.Date, time.Time or
// "YYYY-MM-DD" strings; Hectares may be a decimal, a number or its text.
type LotInput struct {
	Code        string
	Farm        string
	Variety     string
	Hectares    any
	SowingDate  any
	HarvestDate any
	Responsible string
	Organic     *bool
}

type LotService interface {
	Register(ctx context.Context, in LotInput) (*views.LotView, error)
	Snapshot(ctx context.Context, id uint) (*views.Snapshot, error)
	List(ctx context.Context, limit int) ([]views.LotView, error)
	FindByCode(ctx context.Context, code string) (*views.LotView, error)
	Delete(ctx context.Context, id uint) error
}
