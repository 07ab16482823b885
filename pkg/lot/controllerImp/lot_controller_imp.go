package controllerImp

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"traza/pkg/httpx"
	"traza/pkg/lot/controller"
	"traza/pkg/lot/service"
	"traza/pkg/report"
)

const (
	MsgCreated   = "lot created successfully"
	MsgRetrieved = "traceability retrieved successfully"
	MsgDeleted   = "lot deleted successfully"
)

type LotCtrl struct{ svc service.LotService }

var _ controller.LotController = (*LotCtrl)(nil)

func New(svc service.LotService) *LotCtrl { return &LotCtrl{svc} }

type createReq struct {
	Code        string      `json:"codigo_lote" validate:"required,max=50"`
	Farm        string      `json:"finca" validate:"required,max=200"`
	Variety     string      `json:"variedad" validate:"required,max=100"`
	Hectares    json.Number `json:"hectareas" validate:"required"`
	SowingDate  string      `json:"fecha_siembra" validate:"required,datetime=2006-01-02"`
	HarvestDate string      `json:"fecha_cosecha" validate:"required,datetime=2006-01-02"`
	Responsible string      `json:"responsable" validate:"required,max=200"`
	Organic     *bool       `json:"certificacion_organica"`
}

var hectaresSpec = httpx.DecimalSpec{MaxDigits: 5, Places: 2}

func (h *LotCtrl) List(c echo.Context) error {
	lots, err := h.svc.List(c.Request().Context(), 0)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.List(c, lots, len(lots))
}

func (h *LotCtrl) Create(c echo.Context) error {
	var req createReq
	if ok, err := httpx.BindAndValidate(c, &req); !ok {
		return err
	}
	errs := httpx.FieldErrors{}
	httpx.CheckDecimal(errs, "hectareas", req.Hectares, hectaresSpec)
	if len(errs) > 0 {
		return httpx.BadRequest(c, httpx.MsgInvalidData, errs)
	}

	v, err := h.svc.Register(c.Request().Context(), service.LotInput{
		Code:        req.Code,
		Farm:        req.Farm,
		Variety:     req.Variety,
		Hectares:    req.Hectares,
		SowingDate:  req.SowingDate,
		HarvestDate: req.HarvestDate,
		Responsible: req.Responsible,
		Organic:     req.Organic,
	})
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.Created(c, v, MsgCreated)
}

func (h *LotCtrl) Get(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.NotFound(c, "lot not found")
	}
	snap, err := h.svc.Snapshot(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, snap, MsgRetrieved)
}

func (h *LotCtrl) GetByCode(c echo.Context) error {
	v, err := h.svc.FindByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, v, "")
}

func (h *LotCtrl) Delete(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.NotFound(c, "lot not found")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, nil, MsgDeleted)
}

func (h *LotCtrl) Export(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.NotFound(c, "lot not found")
	}
	snap, err := h.svc.Snapshot(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(c, err)
	}
	raw, err := report.Render(snap)
	if err != nil {
		return httpx.Fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, report.Disposition(snap))
	return c.Blob(http.StatusOK, report.ContentType, raw)
}
