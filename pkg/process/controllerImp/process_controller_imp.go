package controllerImp

import (
	"github.com/labstack/echo/v4"

	"traza/pkg/httpx"
	"traza/pkg/process/controller"
	"traza/pkg/process/service"
)

const MsgCreated = "process registered successfully"

type ProcessCtrl struct{ svc service.ProcessService }

var _ controller.ProcessController = (*ProcessCtrl)(nil)

func New(svc service.ProcessService) *ProcessCtrl { return &ProcessCtrl{svc} }

type createReq struct {
	LotID           uint   `json:"lote_id" validate:"required"`
	WashedAt        string `json:"fecha_lavado" validate:"required"`
	WashResponsible string `json:"responsable_lavado" validate:"required,max=200"`
	WashMethod      string `json:"metodo_lavado" validate:"required,max=100"`
	PackagedAt      string `json:"fecha_empaquetado" validate:"required"`
	PackageType     string `json:"tipo_empaque" validate:"required,max=100"`
	Quantity        int    `json:"cantidad_empaquetada" validate:"min=1"`
	Unit            string `json:"unidad_medida" validate:"required,max=50"`
}

func (h *ProcessCtrl) Create(c echo.Context) error {
	var req createReq
	if ok, err := httpx.BindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.svc.Register(c.Request().Context(), service.ProcessInput{
		LotID:           req.LotID,
		WashedAt:        req.WashedAt,
		WashResponsible: req.WashResponsible,
		WashMethod:      req.WashMethod,
		PackagedAt:      req.PackagedAt,
		PackageType:     req.PackageType,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
	})
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.Created(c, v, MsgCreated)
}
