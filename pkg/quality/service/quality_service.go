package service

import (
	"context"

	"traza/pkg/views"
)

// ControlInput carries raw inspection fields. Status is "A", "R" or "P"; blank means "P".
// PH and Brix are optional decimals (nil when not measured).
type ControlInput struct {
	ProcessID    uint
	Inspector    string
	Status       string
	PH           any
	Brix         any
	Defects      string
	Observations string
}

type QualityService interface {
	Register(ctx context.Context, in ControlInput) (*views.ControlView, error)
}
