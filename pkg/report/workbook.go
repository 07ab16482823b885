// Package report renders a traceability snapshot as an xlsx workbook.
package report

import (
	"fmt"
	"mime"
	"strconv"

	"github.com/xuri/excelize/v2"

	"traza/pkg/views"
)

const (
	SheetLot        = "Lote"
	SheetProcesses  = "Procesos"
	SheetControls   = "Controles"
	SheetTransports = "Transportes"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Filename is the download name for a lot's workbook.
func Filename(snap *views.Snapshot) string {
	return fmt.Sprintf("trazabilidad_%s.xlsx", snap.Lot.Code)
}

// Workbook builds the workbook. Values are written as the same text the JSON snapshot
// carries so both exports agree.
func Workbook(snap *views.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetLot); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetProcesses, SheetControls, SheetTransports} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	w := sheetWriter{f: f}
	l := snap.Lot
	w.rows(SheetLot, [][]any{
		{"id", l.ID},
		{"codigo_lote", l.Code},
		{"finca", l.Farm},
		{"variedad", l.Variety},
		{"hectareas", l.Hectares},
		{"fecha_siembra", l.SowingDate},
		{"fecha_cosecha", l.HarvestDate},
		{"responsable", l.Responsible},
		{"certificacion_organica", strconv.FormatBool(l.Organic)},
		{"trazabilidad_completa", strconv.FormatBool(snap.Complete)},
		{"mensaje_estado", snap.Status},
	})

	processes := [][]any{{"id", "fecha_lavado", "responsable_lavado", "metodo_lavado", "fecha_empaquetado", "tipo_empaque", "cantidad_empaquetada", "unidad_medida"}}
	controls := [][]any{{"id", "proceso_id", "fecha", "inspector", "estado", "ph", "brix", "defectos", "observaciones"}}
	for _, p := range snap.Processes {
		processes = append(processes, []any{p.ID, p.WashedAt, p.WashResponsible, p.WashMethod, p.PackagedAt, p.PackageType, p.Quantity, p.Unit})
		for _, q := range p.Controls {
			controls = append(controls, []any{q.ID, q.ProcessID, q.ControlledAt, q.Inspector, q.Status, deref(q.PH), deref(q.Brix), q.Defects, q.Observations})
		}
	}
	w.rows(SheetProcesses, processes)
	w.rows(SheetControls, controls)

	transports := [][]any{{"id", "proceso_id", "fecha_salida", "fecha_entrega", "vehiculo", "conductor", "destino", "temperatura_minima", "temperatura_maxima", "temperatura_promedio", "recibido_por", "estado_entrega"}}
	for _, t := range snap.Transports {
		transports = append(transports, []any{t.ID, t.ProcessID, t.DepartedAt, deref(t.DeliveredAt), t.Vehicle, t.Driver, t.Destination, t.TempMin, t.TempMax, t.TempAvg, t.ReceivedBy, t.DeliveryStatus})
	}
	w.rows(SheetTransports, transports)

	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

// Render builds the workbook of snap and returns the encoded file.
func Render(snap *views.Snapshot) ([]byte, error) {
	f, err := Workbook(snap)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Disposition is the Content-Disposition header for the download of snap.
func Disposition(snap *views.Snapshot) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": Filename(snap)})
}

type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) rows(sheet string, rows [][]any) {
	for i, row := range rows {
		if w.err != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetSheetRow(sheet, cell, &row)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
