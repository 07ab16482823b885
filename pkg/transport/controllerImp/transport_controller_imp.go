package controllerImp

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"traza/pkg/httpx"
	"traza/pkg/rules"
	"traza/pkg/transport/controller"
	"traza/pkg/transport/service"
)

const (
	MsgCreated   = "transport registered successfully"
	MsgDelivered = "delivery registered successfully"
	MsgRecorded  = "temperature recorded successfully"
)

type TransportCtrl struct{ svc service.TransportService }

var _ controller.TransportController = (*TransportCtrl)(nil)

func New(svc service.TransportService) *TransportCtrl { return &TransportCtrl{svc} }

type createReq struct {
	LotID       uint        `json:"lote_id" validate:"required"`
	ProcessID   uint        `json:"proceso_id" validate:"required"`
	DepartedAt  string      `json:"fecha_salida" validate:"required"`
	Vehicle     string      `json:"vehiculo" validate:"required,max=100"`
	Driver      string      `json:"conductor" validate:"required,max=200"`
	Destination string      `json:"destino" validate:"required,max=200"`
	TempMin     json.Number `json:"temperatura_minima" validate:"required"`
	TempMax     json.Number `json:"temperatura_maxima" validate:"required"`
	TempAvg     json.Number `json:"temperatura_promedio" validate:"required"`
}

type deliveryReq struct {
	DeliveredAt string  `json:"fecha_entrega"`
	ReceivedBy  *string `json:"recibido_por" validate:"omitempty,max=200"`
	Status      *string `json:"estado_entrega" validate:"omitempty,max=50"`
}

type readingReq struct {
	Temperature json.Number `json:"temperatura" validate:"required"`
}

var (
	tempMinSpec = httpx.DecimalSpec{MaxDigits: 4, Places: 1, Min: &rules.LowestRecordedTemp}
	tempMaxSpec = httpx.DecimalSpec{MaxDigits: 4, Places: 1, Max: &rules.HighestRecordedTemp}
	tempSpec    = httpx.DecimalSpec{MaxDigits: 4, Places: 1}
)

func (h *TransportCtrl) Create(c echo.Context) error {
	var req createReq
	if ok, err := httpx.BindAndValidate(c, &req); !ok {
		return err
	}
	errs := httpx.FieldErrors{}
	httpx.CheckDecimal(errs, "temperatura_minima", req.TempMin, tempMinSpec)
	httpx.CheckDecimal(errs, "temperatura_maxima", req.TempMax, tempMaxSpec)
	httpx.CheckDecimal(errs, "temperatura_promedio", req.TempAvg, tempSpec)
	if len(errs) > 0 {
		return httpx.BadRequest(c, httpx.MsgInvalidData, errs)
	}

	v, err := h.svc.Register(c.Request().Context(), service.TransportInput{
		LotID:       req.LotID,
		ProcessID:   req.ProcessID,
		DepartedAt:  req.DepartedAt,
		Vehicle:     req.Vehicle,
		Driver:      req.Driver,
		Destination: req.Destination,
		TempMin:     req.TempMin,
		TempMax:     req.TempMax,
		TempAvg:     req.TempAvg,
	})
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.Created(c, v, MsgCreated)
}

func (h *TransportCtrl) Deliver(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.NotFound(c, "transport not found")
	}
	var req deliveryReq
	if ok, err := httpx.BindAndValidate(c, &req); !ok {
		return err
	}
	in := service.DeliveryInput{ReceivedBy: req.ReceivedBy, Status: req.Status}
	if req.DeliveredAt != "" {
		in.DeliveredAt = req.DeliveredAt
	}
	v, err := h.svc.RegisterDelivery(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, v, MsgDelivered)
}

func (h *TransportCtrl) RecordTemperature(c echo.Context) error {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return httpx.NotFound(c, "transport not found")
	}
	var req readingReq
	if ok, err := httpx.BindAndValidate(c, &req); !ok {
		return err
	}
	errs := httpx.FieldErrors{}
	httpx.CheckDecimal(errs, "temperatura", req.Temperature, tempSpec)
	if len(errs) > 0 {
		return httpx.BadRequest(c, httpx.MsgInvalidData, errs)
	}
	v, err := h.svc.RecordTemperature(c.Request().Context(), id, req.Temperature)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, v, MsgRecorded)
}
