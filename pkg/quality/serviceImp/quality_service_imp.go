package serviceImp

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/clock"
	"traza/pkg/logger"
	"traza/pkg/metrics"
	processRepo "traza/pkg/process/repository"
	"traza/pkg/quality/repository"
	"traza/pkg/quality/service"
	"traza/pkg/rules"
	"traza/pkg/views"
)

type qualitySvc struct {
	r         repository.QualityRepository
	processes processRepo.ProcessRepository
	clock     clock.Clock
	log       *logger.Logger
	metrics   *metrics.Metrics
}

func NewQualityService(r repository.QualityRepository, processes processRepo.ProcessRepository, clk clock.Clock, log *logger.Logger, m *metrics.Metrics) service.QualityService {
	if clk == nil {
		clk = clock.System()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &qualitySvc{r: r, processes: processes, clock: clk, log: log.With("component", "quality"), metrics: m}
}

func (s *qualitySvc) Register(ctx context.Context, in service.ControlInput) (*views.ControlView, error) {
	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if status == "" {
		status = string(entities.ControlPending)
	}
	if ok, reason := rules.ValidateControlStatus(status); !ok {
		return nil, s.reject(apperr.RuleViolation(reason))
	}
	ph, err := optionalDecimal("ph", in.PH, rules.PHPlaces)
	if err != nil {
		return nil, s.reject(err)
	}
	brix, err := optionalDecimal("brix", in.Brix, rules.BrixPlaces)
	if err != nil {
		return nil, s.reject(err)
	}

	if _, err := s.processes.FindByID(ctx, in.ProcessID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, s.reject(apperr.NotFound("process"))
		}
		return nil, s.fail(err)
	}

	q := &entities.QualityControl{
		ProcessID:    in.ProcessID,
		ControlledAt: s.clock.Now().UTC(),
		Inspector:    in.Inspector,
		Status:       entities.ControlStatus(status),
		PH:           ph,
		Brix:         brix,
		Defects:      in.Defects,
		Observations: in.Observations,
	}
	if err := s.r.Create(ctx, q); err != nil {
		return nil, s.fail(err)
	}
	s.metrics.IncRegistration("quality_control", "created")
	s.log.Info("quality control registered", "control_id", q.ControlID, "process_id", q.ProcessID, "status", q.Status)
	v := views.Control(q)
	return &v, nil
}

func optionalDecimal(field string, v any, places int32) (decimal.NullDecimal, error) {
	if !rules.Present(v) {
		return decimal.NullDecimal{}, nil
	}
	d, err := rules.ParseDecimal(field, v)
	if err != nil {
		return decimal.NullDecimal{}, apperr.Format(err.Error(), err)
	}
	return decimal.NewNullDecimal(d.Round(places)), nil
}

func (s *qualitySvc) reject(err error) error {
	s.metrics.IncRegistration("quality_control", "rejected")
	s.log.Info("quality control rejected", "reason", err.Error())
	return err
}

func (s *qualitySvc) fail(cause error) error {
	s.metrics.IncRegistration("quality_control", "failed")
	s.log.Error("quality control persistence failed", "err", cause)
	return apperr.Persistence("quality control", cause)
}
