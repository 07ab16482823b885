package service

import (
	"context"

	"traza/pkg/views"
)

// TransportInput carries raw dispatch fields. Temperatures may be decimals, numbers or
// their text; DepartedAt may be a time.Time or an ISO-8601 string.
type TransportInput struct {
	LotID       uint
	ProcessID   uint
	DepartedAt  any
	Vehicle     string
	Driver      string
	Destination string
	TempMin     any
	TempMax     any
	TempAvg     any
}

// DeliveryInput fills the delivery fields of a transport. Nil fields take their defaults:
// the current time, an empty receiver and the DELIVERED status.
type DeliveryInput struct {
	DeliveredAt any
	ReceivedBy  *string
	Status      *string
}

type TransportService interface {
	Register(ctx context.Context, in TransportInput) (*views.TransportView, error)
	RegisterDelivery(ctx context.Context, id uint, in DeliveryInput) (*views.DeliveryView, error)
	// RecordTemperature widens the recorded minimum/maximum to include reading.
	RecordTemperature(ctx context.Context, id uint, reading any) (*views.TransportView, error)
}
