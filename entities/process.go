package entities

import "time"

// Process is a wash-and-package event applied to a lot.
type Process struct {
	ProcessID       uint      `gorm:"primaryKey" json:"id"`
	LotID           uint      `gorm:"index;not null" json:"lote_id"`
	WashedAt        time.Time `gorm:"index" json:"fecha_lavado"`
	WashResponsible string    `gorm:"size:200" json:"responsable_lavado"`
	WashMethod      string    `gorm:"size:100" json:"metodo_lavado"`
	PackagedAt      time.Time `json:"fecha_empaquetado"`
	PackageType     string    `gorm:"size:100" json:"tipo_empaque"`
	Quantity        int       `json:"cantidad_empaquetada"`
	Unit            string    `gorm:"size:50" json:"unidad_medida"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Process) TableName() string { return "processes" }
