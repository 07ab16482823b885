package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traza/pkg/apperr"
	"traza/pkg/httpx"
	"traza/pkg/quality/service"
	"traza/pkg/views"
)

type stubService struct {
	got *service.ControlInput
	err error
}

func (s *stubService) Register(_ context.Context, in service.ControlInput) (*views.ControlView, error) {
	s.got = &in
	if s.err != nil {
		return nil, s.err
	}
	return &views.ControlView{ID: 1, ProcessID: in.ProcessID, StatusCode: in.Status}, nil
}

func post(t *testing.T, svc *stubService, id, body string) (*httptest.ResponseRecorder, httpx.Response) {
	t.Helper()
	e := echo.New()
	e.Validator = httpx.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, New(svc).Create(c))
	var resp httpx.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCreate(t *testing.T) {
	svc := &stubService{}
	rec, resp := post(t, svc, "7", `{"inspector":"Marta","estado":"R","brix":"12.5"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, MsgCreated, resp.Message)
	require.NotNil(t, svc.got)
	assert.Equal(t, uint(7), svc.got.ProcessID)
	assert.Nil(t, svc.got.PH, "absent ph reaches the service as nil")
	assert.Equal(t, json.Number("12.5"), svc.got.Brix)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := &stubService{}

	rec, _ := post(t, svc, "abc", `{"inspector":"Marta"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp := post(t, svc, "7", `{"inspector":"Marta","ph":14.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "ph")

	rec, resp = post(t, svc, "7", `{"inspector":"Marta","estado":"Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "estado")
	assert.Nil(t, svc.got, "invalid requests never reach the service")
}

func TestCreateMapsServiceErrors(t *testing.T) {
	rec, resp := post(t, &stubService{err: apperr.NotFound("process")}, "9", `{"inspector":"Marta"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "process not found", resp.Message)
}
