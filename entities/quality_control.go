package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ControlStatus string

const (
	ControlApproved ControlStatus = "A"
	ControlRejected ControlStatus = "R"
	ControlPending  ControlStatus = "P"
)

// Label is the display name of the status.
func (s ControlStatus) Label() string {
	switch s {
	case ControlApproved:
		return "Approved"
	case ControlRejected:
		return "Rejected"
	case ControlPending:
		return "Pending"
	}
	return string(s)
}

// QualityControl is an inspection of a process. Status is fixed at creation.
type QualityControl struct {
	ControlID    uint                `gorm:"primaryKey" json:"id"`
	ProcessID    uint                `gorm:"index;not null" json:"proceso_id"`
	ControlledAt time.Time           `gorm:"index" json:"fecha_control"`
	Inspector    string              `gorm:"size:200" json:"inspector"`
	Status       ControlStatus       `gorm:"size:1;not null" json:"estado"`
	PH           decimal.NullDecimal `gorm:"type:decimal(3,1)" json:"ph"`
	Brix         decimal.NullDecimal `gorm:"type:decimal(4,1)" json:"brix"`
	Defects      string              `gorm:"type:text" json:"defectos"`
	Observations string              `gorm:"type:text" json:"observaciones"`

	CreatedAt time.Time
}

func (QualityControl) TableName() string { return "quality_controls" }
