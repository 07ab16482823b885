package controllerImp

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"traza/pkg/httpx"
	"traza/pkg/quality/controller"
	"traza/pkg/quality/service"
)

const MsgCreated = "quality control registered successfully"

type QualityCtrl struct{ svc service.QualityService }

var _ controller.QualityController = (*QualityCtrl)(nil)

func New(svc service.QualityService) *QualityCtrl { return &QualityCtrl{svc} }

// the process comes from the path
type createReq struct {
	Inspector    string      `json:"inspector" validate:"required,max=200"`
	Status       string      `json:"estado" validate:"omitempty,oneof=A R P"`
	PH           json.Number `json:"ph"`
	Brix         json.Number `json:"brix"`
	Defects      string      `json:"defectos"`
	Observations string      `json:"observaciones"`
}

var (
	phSpec   = httpx.DecimalSpec{MaxDigits: 3, Places: 1, Min: httpx.Bound(0), Max: httpx.Bound(14)}
	brixSpec = httpx.DecimalSpec{MaxDigits: 4, Places: 1, Min: httpx.Bound(0)}
)

func (h *QualityCtrl) Create(c echo.Context) error {
	processID, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.NotFound(c, "process not found")
	}
	var req createReq
	if ok, err := httpx.BindAndValidate(c, &req); !ok {
		return err
	}
	errs := httpx.FieldErrors{}
	httpx.CheckDecimal(errs, "ph", req.PH, phSpec)
	httpx.CheckDecimal(errs, "brix", req.Brix, brixSpec)
	if len(errs) > 0 {
		return httpx.BadRequest(c, httpx.MsgInvalidData, errs)
	}

	v, err := h.svc.Register(c.Request().Context(), service.ControlInput{
		ProcessID:    processID,
		Inspector:    req.Inspector,
		Status:       req.Status,
		PH:           httpx.Optional(req.PH),
		Brix:         httpx.Optional(req.Brix),
		Defects:      req.Defects,
		Observations: req.Observations,
	})
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.Created(c, v, MsgCreated)
}
