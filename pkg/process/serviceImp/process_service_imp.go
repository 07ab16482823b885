package serviceImp

import (
	"context"

	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/logger"
	lotRepo "traza/pkg/lot/repository"
	"traza/pkg/metrics"
	"traza/pkg/process/repository"
	"traza/pkg/process/service"
	"traza/pkg/rules"
	"traza/pkg/views"
)

type processSvc struct {
	r       repository.ProcessRepository
	lots    lotRepo.LotRepository
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewProcessService(r repository.ProcessRepository, lots lotRepo.LotRepository, log *logger.Logger, m *metrics.Metrics) service.ProcessService {
	if log == nil {
		log = logger.NewNop()
	}
	return &processSvc{r: r, lots: lots, log: log.With("component", "process"), metrics: m}
}

func (s *processSvc) Register(ctx context.Context, in service.ProcessInput) (*views.ProcessView, error) {
	ok, reason, err := rules.ValidateTransformationProcess(in.WashedAt, in.PackagedAt)
	if err != nil {
		return nil, s.reject(apperr.Format(reason, err))
	}
	if !ok {
		return nil, s.reject(apperr.RuleViolation(reason))
	}
	if in.Quantity < 1 {
		return nil, s.reject(apperr.RuleViolation("cantidad_empaquetada must be at least 1"))
	}

	if _, err := s.lots.FindByID(ctx, in.LotID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, s.reject(apperr.NotFound("lot"))
		}
		return nil, s.fail(err)
	}

	// both parse: the validator above accepted them
	washed, _ := rules.ParseTimestamp("fecha_lavado", in.WashedAt)
	packaged, _ := rules.ParseTimestamp("fecha_empaquetado", in.PackagedAt)
	p := &entities.Process{
		LotID:           in.LotID,
		WashedAt:        washed.UTC(),
		WashResponsible: in.WashResponsible,
		WashMethod:      in.WashMethod,
		PackagedAt:      packaged.UTC(),
		PackageType:     in.PackageType,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, s.fail(err)
	}
	s.metrics.IncRegistration("process", "created")
	s.log.Info("process registered", "process_id", p.ProcessID, "lot_id", p.LotID)
	v := views.Process(p, nil)
	return &v, nil
}

func (s *processSvc) reject(err error) error {
	s.metrics.IncRegistration("process", "rejected")
	s.log.Info("process rejected", "reason", err.Error())
	return err
}

func (s *processSvc) fail(cause error) error {
	s.metrics.IncRegistration("process", "failed")
	s.log.Error("process persistence failed", "err", cause)
	return apperr.Persistence("process", cause)
}
