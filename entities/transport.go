package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const DeliveryStatusDelivered = "DELIVERED"

// Transport is a shipment of a lot's processed output. Delivery fields stay empty until
// the delivery is registered.
type Transport struct {
	TransportID    uint            `gorm:"primaryKey" json:"id"`
	LotID          uint            `gorm:"index;not null" json:"lote_id"`
	ProcessID      uint            `gorm:"index;not null" json:"proceso_id"`
	DepartedAt     time.Time       `gorm:"index" json:"fecha_salida"`
	DeliveredAt    *time.Time      `json:"fecha_entrega"`
	Vehicle        string          `gorm:"size:100" json:"vehiculo"`
	Driver         string          `gorm:"size:200" json:"conductor"`
	Destination    string          `gorm:"size:200" json:"destino"`
	TempMin        decimal.Decimal `gorm:"type:decimal(4,1)" json:"temperatura_minima"`
	TempMax        decimal.Decimal `gorm:"type:decimal(4,1)" json:"temperatura_maxima"`
	TempAvg        decimal.Decimal `gorm:"type:decimal(4,1)" json:"temperatura_promedio"`
	ReceivedBy     string          `gorm:"size:200" json:"recibido_por"`
	DeliveryStatus string          `gorm:"size:50" json:"estado_entrega"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Transport) TableName() string { return "transports" }
