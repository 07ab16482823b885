package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"

	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/logger"
	lotRepo "traza/pkg/lot/repository"
	"traza/pkg/lot/service"
	"traza/pkg/metrics"
	processRepo "traza/pkg/process/repository"
	qualityRepo "traza/pkg/quality/repository"
	"traza/pkg/rules"
	transportRepo "traza/pkg/transport/repository"
	"traza/pkg/views"
)

// ReasonDuplicateCode is returned when a lot code is already taken.
const ReasonDuplicateCode = "lot code already registered"

type lotSvc struct {
	lots       lotRepo.LotRepository
	processes  processRepo.ProcessRepository
	controls   qualityRepo.QualityRepository
	transports transportRepo.TransportRepository
	log        *logger.Logger
	metrics    *metrics.Metrics
}

func NewLotService(
	lots lotRepo.LotRepository,
	processes processRepo.ProcessRepository,
	controls qualityRepo.QualityRepository,
	transports transportRepo.TransportRepository,
	log *logger.Logger,
	m *metrics.Metrics,
) service.LotService {
	if log == nil {
		log = logger.NewNop()
	}
	return &lotSvc{
		lots:       lots,
		processes:  processes,
		controls:   controls,
		transports: transports,
		log:        log.With("component", "lot"),
		metrics:    m,
	}
}

func (s *lotSvc) Register(ctx context.Context, in service.LotInput) (*views.LotView, error) {
	if rules.Present(in.SowingDate) && rules.Present(in.HarvestDate) {
		ok, reason, err := rules.ValidateHarvestDates(in.SowingDate, in.HarvestDate)
		if err != nil {
			return nil, s.reject(apperr.Format(reason, err))
		}
		if !ok {
			return nil, s.reject(apperr.RuleViolation(reason))
		}
	}

	l, err := buildLot(in)
	if err != nil {
		return nil, s.reject(err)
	}

	taken, err := s.lots.ExistsCode(ctx, l.Code)
	if err != nil {
		return nil, s.fail(err)
	}
	if taken {
		return nil, s.reject(apperr.RuleViolation(ReasonDuplicateCode))
	}

	if err := s.lots.Create(ctx, l); err != nil {
		return nil, s.fail(err)
	}
	s.metrics.IncRegistration("lot", "created")
	s.log.Info("lot registered", "lot_id", l.LotID, "code", l.Code)
	v := views.Lot(l)
	return &v, nil
}

func buildLot(in service.LotInput) (*entities.Lot, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, apperr.RuleViolation("codigo_lote is required")
	}
	sowing, err := rules.ParseDate("fecha_siembra", in.SowingDate)
	if err != nil {
		return nil, apperr.Format(err.Error(), err)
	}
	harvest, err := rules.ParseDate("fecha_cosecha", in.HarvestDate)
	if err != nil {
		return nil, apperr.Format(err.Error(), err)
	}
	hectares, err := rules.ParseDecimal("hectareas", in.Hectares)
	if err != nil {
		return nil, apperr.Format(err.Error(), err)
	}
	organic := true
	if in.Organic != nil {
		organic = *in.Organic
	}
	return &entities.Lot{
		Code:        code,
		Farm:        in.Farm,
		Variety:     in.Variety,
		Hectares:    hectares.Round(rules.AreaPlaces),
		SowingDate:  datatypes.Date(sowing),
		HarvestDate: datatypes.Date(harvest),
		Responsible: in.Responsible,
		Organic:     organic,
	}, nil
}

func (s *lotSvc) reject(err error) error {
	s.metrics.IncRegistration("lot", "rejected")
	s.log.Info("lot rejected", "reason", err.Error())
	return err
}

func (s *lotSvc) fail(cause error) error {
	s.metrics.IncRegistration("lot", "failed")
	s.log.Error("lot persistence failed", "err", cause)
	return apperr.Persistence("lot", cause)
}

func (s *lotSvc) Snapshot(ctx context.Context, id uint) (*views.Snapshot, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveSnapshot(time.Since(start)) }()

	l, err := s.lots.FindByID(ctx, id)
	if err != nil {
		return nil, s.readErr(err, "lot")
	}

	reader := traceReader{lots: s.lots, processes: s.processes, controls: s.controls, transports: s.transports}
	complete, reason, err := rules.Completeness(ctx, reader, id)
	if err != nil {
		return nil, s.readErr(err, "traceability")
	}
	s.metrics.IncCompleteness(complete)

	processes, err := s.processes.ListByLot(ctx, id)
	if err != nil {
		return nil, s.readErr(err, "traceability")
	}
	pv := make([]views.ProcessView, 0, len(processes))
	for i := range processes {
		controls, err := s.controls.ListByProcess(ctx, processes[i].ProcessID)
		if err != nil {
			return nil, s.readErr(err, "traceability")
		}
		pv = append(pv, views.Process(&processes[i], controls))
	}

	transports, err := s.transports.ListByLot(ctx, id)
	if err != nil {
		return nil, s.readErr(err, "traceability")
	}
	tv := make([]views.TransportView, 0, len(transports))
	for i := range transports {
		tv = append(tv, views.Transport(&transports[i]))
	}

	return &views.Snapshot{
		Lot:        views.Lot(l),
		Processes:  pv,
		Transports: tv,
		Complete:   complete,
		Status:     reason,
	}, nil
}

// readErr maps a lookup failure: missing lots become "lot not found", anything else is a
// storage failure on the named target.
func (s *lotSvc) readErr(err error, target string) error {
	if apperr.IsNotFound(err) {
		return apperr.NotFound("lot")
	}
	s.log.Error("lot lookup failed", "target", target, "err", err)
	return apperr.Storage("retrieving", target, err)
}

func (s *lotSvc) List(ctx context.Context, limit int) ([]views.LotView, error) {
	ls, err := s.lots.List(ctx, limit)
	if err != nil {
		return nil, s.readErr(err, "lots")
	}
	return views.Lots(ls), nil
}

func (s *lotSvc) FindByCode(ctx context.Context, code string) (*views.LotView, error) {
	l, err := s.lots.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, s.readErr(err, "lot")
	}
	v := views.Lot(l)
	return &v, nil
}

func (s *lotSvc) Delete(ctx context.Context, id uint) error {
	err := s.lots.Delete(ctx, id)
	switch {
	case err == nil:
		s.log.Info("lot deleted", "lot_id", id)
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		return apperr.NotFound("lot")
	default:
		s.log.Error("lot delete failed", "lot_id", id, "err", err)
		return apperr.Storage("deleting", "lot", err)
	}
}
