package controllerImp

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"traza/pkg/apperr"
	"traza/pkg/lot/service"
	"traza/pkg/report"
	"traza/pkg/views"
)

type stubService struct {
	service.LotService
	snap *views.Snapshot
	err  error
}

func (s *stubService) Snapshot(context.Context, uint) (*views.Snapshot, error) {
	return s.snap, s.err
}

func export(t *testing.T, svc *stubService, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, New(svc).Export(c))
	return rec
}

func TestExport(t *testing.T) {
	snap := &views.Snapshot{Lot: views.LotView{ID: 4, Code: "Año-4"}, Status: "missing transformation process"}
	rec := export(t, &stubService{snap: snap}, "4")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename*=utf-8''trazabilidad_A%C3%B1o-4.xlsx`, rec.Header().Get(echo.HeaderContentDisposition))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	code, err := f.GetCellValue(report.SheetLot, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Año-4", code)
}

func TestExportFailureSendsNoWorkbook(t *testing.T) {
	rec := export(t, &stubService{err: apperr.NotFound("lot")}, "4")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	rec = export(t, &stubService{err: apperr.Storage("retrieving", "lot", assert.AnError)}, "4")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
}
