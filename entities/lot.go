package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Lot is a harvested batch: the origin of a traceability chain.
type Lot struct {
	LotID       uint            `gorm:"primaryKey" json:"id"`
	Code        string          `gorm:"size:50;uniqueIndex;not null" json:"codigo_lote"`
	Farm        string          `gorm:"size:200" json:"finca"`
	Variety     string          `gorm:"size:100" json:"variedad"`
	Hectares    decimal.Decimal `gorm:"type:decimal(5,2)" json:"hectareas"`
	SowingDate  datatypes.Date  `json:"fecha_siembra"`
	HarvestDate datatypes.Date  `gorm:"index" json:"fecha_cosecha"`
	Responsible string          `gorm:"size:200" json:"responsable"`
	Organic     bool            `json:"certificacion_organica"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Lot) TableName() string { return "lots" }
