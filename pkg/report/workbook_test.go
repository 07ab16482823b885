package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"traza/pkg/views"
)

func sampleSnapshot() *views.Snapshot {
	ph := "4.2"
	return &views.Snapshot{
		Lot: views.LotView{ID: 7, Code: "L-7", Farm: "El Roble", Hectares: "3.10", SowingDate: "2024-01-10", HarvestDate: "2024-06-01", Organic: true},
		Processes: []views.ProcessView{{
			ID: 3, WashedAt: "2024-06-02T08:00:00Z", PackagedAt: "2024-06-02T14:00:00Z", Quantity: 40,
			Controls: []views.ControlView{{ID: 9, ProcessID: 3, Status: "Approved", PH: &ph}},
		}},
		Transports: []views.TransportView{{ID: 5, ProcessID: 3, TempMin: "9.0", TempMax: "14.5", TempAvg: "12.0"}},
		Complete:   true,
		Status:     "traceability complete",
	}
}

func TestRenderProducesReadableWorkbook(t *testing.T) {
	raw, err := Render(sampleSnapshot())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetLot, SheetProcesses, SheetControls, SheetTransports}, f.GetSheetList())

	v, err := f.GetCellValue(SheetLot, "B2")
	require.NoError(t, err)
	assert.Equal(t, "L-7", v)
	v, err = f.GetCellValue(SheetLot, "B5")
	require.NoError(t, err)
	assert.Equal(t, "3.10", v, "decimals keep their fixed-point text")
	v, err = f.GetCellValue(SheetLot, "B10")
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	rows, err := f.GetRows(SheetControls)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Approved", rows[1][4])
	assert.Equal(t, "4.2", rows[1][5])

	rows, err = f.GetRows(SheetTransports)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "14.5", rows[1][8])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "trazabilidad_L-7.xlsx", Filename(sampleSnapshot()))
}

func TestDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename=trazabilidad_L-7.xlsx`, Disposition(sampleSnapshot()))

	snap := sampleSnapshot()
	snap.Lot.Code = "Año-1"
	assert.Equal(t, `attachment; filename*=utf-8''trazabilidad_A%C3%B1o-1.xlsx`, Disposition(snap))
}
