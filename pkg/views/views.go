// Package views holds the outbound shapes of lots, processes, controls and transports.
// Values are rendered only through the rules formatters so every path agrees on the text
// of dates, timestamps and decimals.
package views

import (
	"traza/entities"
	"traza/pkg/rules"
)

type LotView struct {
	ID          uint   `json:"id"`
	Code        string `json:"codigo_lote"`
	Farm        string `json:"finca"`
	Variety     string `json:"variedad"`
	Hectares    string `json:"hectareas"`
	SowingDate  string `json:"fecha_siembra"`
	HarvestDate string `json:"fecha_cosecha"`
	Responsible string `json:"responsable"`
	Organic     bool   `json:"certificacion_organica"`
}

type ControlView struct {
	ID           uint    `json:"id"`
	ProcessID    uint    `json:"proceso_id"`
	ControlledAt string  `json:"fecha"`
	Inspector    string  `json:"inspector"`
	StatusCode   string  `json:"codigo_estado"`
	Status       string  `json:"estado"`
	PH           *string `json:"ph"`
	Brix         *string `json:"brix"`
	Defects      string  `json:"defectos"`
	Observations string  `json:"observaciones"`
}

type ProcessView struct {
	ID              uint          `json:"id"`
	LotID           uint          `json:"lote_id"`
	WashedAt        string        `json:"fecha_lavado"`
	WashResponsible string        `json:"responsable_lavado"`
	WashMethod      string        `json:"metodo_lavado"`
	PackagedAt      string        `json:"fecha_empaquetado"`
	PackageType     string        `json:"tipo_empaque"`
	Quantity        int           `json:"cantidad_empaquetada"`
	Unit            string        `json:"unidad_medida"`
	Controls        []ControlView `json:"controles_calidad"`
}

type TransportView struct {
	ID             uint    `json:"id"`
	LotID          uint    `json:"lote_id"`
	ProcessID      uint    `json:"proceso_id"`
	DepartedAt     string  `json:"fecha_salida"`
	DeliveredAt    *string `json:"fecha_entrega"`
	Vehicle        string  `json:"vehiculo"`
	Driver         string  `json:"conductor"`
	Destination    string  `json:"destino"`
	TempMin        string  `json:"temperatura_minima"`
	TempMax        string  `json:"temperatura_maxima"`
	TempAvg        string  `json:"temperatura_promedio"`
	ReceivedBy     string  `json:"recibido_por"`
	DeliveryStatus string  `json:"estado_entrega"`
}

type DeliveryView struct {
	ID          uint   `json:"id"`
	DeliveredAt string `json:"fecha_entrega"`
	ReceivedBy  string `json:"recibido_por"`
	Status      string `json:"estado"`
}

// Snapshot is the full traceability record of one lot.
type Snapshot struct {
	Lot        LotView         `json:"lote"`
	Processes  []ProcessView   `json:"procesos"`
	Transports []TransportView `json:"transportes"`
	Complete   bool            `json:"trazabilidad_completa"`
	Status     string          `json:"mensaje_estado"`
}

func Lot(l *entities.Lot) LotView {
	return LotView{
		ID:          l.LotID,
		Code:        l.Code,
		Farm:        l.Farm,
		Variety:     l.Variety,
		Hectares:    rules.FormatDecimal(l.Hectares, rules.AreaPlaces),
		SowingDate:  rules.FormatDate(l.SowingDate),
		HarvestDate: rules.FormatDate(l.HarvestDate),
		Responsible: l.Responsible,
		Organic:     l.Organic,
	}
}

func Lots(ls []entities.Lot) []LotView {
	out := make([]LotView, 0, len(ls))
	for i := range ls {
		out = append(out, Lot(&ls[i]))
	}
	return out
}

func Control(q *entities.QualityControl) ControlView {
	return ControlView{
		ID:           q.ControlID,
		ProcessID:    q.ProcessID,
		ControlledAt: rules.FormatTimestamp(q.ControlledAt),
		Inspector:    q.Inspector,
		StatusCode:   string(q.Status),
		Status:       q.Status.Label(),
		PH:           rules.FormatNullDecimal(q.PH, rules.PHPlaces),
		Brix:         rules.FormatNullDecimal(q.Brix, rules.BrixPlaces),
		Defects:      q.Defects,
		Observations: q.Observations,
	}
}

// Process renders p with the given controls nested under it.
func Process(p *entities.Process, controls []entities.QualityControl) ProcessView {
	cv := make([]ControlView, 0, len(controls))
	for i := range controls {
		cv = append(cv, Control(&controls[i]))
	}
	return ProcessView{
		ID:              p.ProcessID,
		LotID:           p.LotID,
		WashedAt:        rules.FormatTimestamp(p.WashedAt),
		WashResponsible: p.WashResponsible,
		WashMethod:      p.WashMethod,
		PackagedAt:      rules.FormatTimestamp(p.PackagedAt),
		PackageType:     p.PackageType,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		Controls:        cv,
	}
}

func Transport(t *entities.Transport) TransportView {
	return TransportView{
		ID:             t.TransportID,
		LotID:          t.LotID,
		ProcessID:      t.ProcessID,
		DepartedAt:     rules.FormatTimestamp(t.DepartedAt),
		DeliveredAt:    rules.FormatTimestampPtr(t.DeliveredAt),
		Vehicle:        t.Vehicle,
		Driver:         t.Driver,
		Destination:    t.Destination,
		TempMin:        rules.FormatDecimal(t.TempMin, rules.TemperaturePlaces),
		TempMax:        rules.FormatDecimal(t.TempMax, rules.TemperaturePlaces),
		TempAvg:        rules.FormatDecimal(t.TempAvg, rules.TemperaturePlaces),
		ReceivedBy:     t.ReceivedBy,
		DeliveryStatus: t.DeliveryStatus,
	}
}

func Delivery(t *entities.Transport) DeliveryView {
	v := DeliveryView{ID: t.TransportID, ReceivedBy: t.ReceivedBy, Status: t.DeliveryStatus}
	if t.DeliveredAt != nil {
		v.DeliveredAt = rules.FormatTimestamp(*t.DeliveredAt)
	}
	return v
}
