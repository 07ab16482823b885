package service

import (
	"context"

	"traza/pkg/views"
)

// ProcessInput carries raw registration fields. Timestamps may be time.Time values or
// ISO-8601 strings.
type ProcessInput struct {
	LotID           uint
	WashedAt        any
	WashResponsible string
	WashMethod      string
	PackagedAt      any
	PackageType     string
	Quantity        int
	Unit            string
}

type ProcessService interface {
	Register(ctx context.Context, in ProcessInput) (*views.ProcessView, error)
}
