package serviceImp

import (
	"context"
	"strings"

	"traza/entities"
	"traza/pkg/apperr"
	"traza/pkg/clock"
	"traza/pkg/logger"
	lotRepo "traza/pkg/lot/repository"
	"traza/pkg/metrics"
	processRepo "traza/pkg/process/repository"
	"traza/pkg/rules"
	"traza/pkg/transport/repository"
	"traza/pkg/transport/service"
	"traza/pkg/views"
)

// ReasonProcessOfOtherLot is returned when a transport names a process of another lot.
const ReasonProcessOfOtherLot = "process does not belong to lot"

type transportSvc struct {
	r         repository.TransportRepository
	lots      lotRepo.LotRepository
	processes processRepo.ProcessRepository
	clock     clock.Clock
	log       *logger.Logger
	metrics   *metrics.Metrics
}

func NewTransportService(
	r repository.TransportRepository,
	lots lotRepo.LotRepository,
	processes processRepo.ProcessRepository,
	clk clock.Clock,
	log *logger.Logger,
	m *metrics.Metrics,
) service.TransportService {
	if clk == nil {
		clk = clock.System()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &transportSvc{
		r:         r,
		lots:      lots,
		processes: processes,
		clock:     clk,
		log:       log.With("component", "transport"),
		metrics:   m,
	}
}

func (s *transportSvc) Register(ctx context.Context, in service.TransportInput) (*views.TransportView, error) {
	if rules.Present(in.TempAvg) {
		ok, reason, err := rules.ValidateTransportTemperature(in.TempAvg)
		if err != nil {
			return nil, s.reject("transport", apperr.Format(reason, err))
		}
		if !ok {
			return nil, s.reject("transport", apperr.RuleViolation(reason))
		}
	}
	ok, reason, err := rules.ValidateTemperatureBounds(in.TempMin, in.TempMax)
	if err != nil {
		return nil, s.reject("transport", apperr.Format(reason, err))
	}
	if !ok {
		return nil, s.reject("transport", apperr.RuleViolation(reason))
	}

	t, err := buildTransport(in)
	if err != nil {
		return nil, s.reject("transport", err)
	}

	if _, err := s.lots.FindByID(ctx, in.LotID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, s.reject("transport", apperr.NotFound("lot"))
		}
		return nil, s.fail("transport", err)
	}
	p, err := s.processes.FindByID(ctx, in.ProcessID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, s.reject("transport", apperr.NotFound("process"))
		}
		return nil, s.fail("transport", err)
	}
	if p.LotID != in.LotID {
		return nil, s.reject("transport", apperr.RuleViolation(ReasonProcessOfOtherLot))
	}

	if err := s.r.Create(ctx, t); err != nil {
		return nil, s.fail("transport", err)
	}
	s.metrics.IncRegistration("transport", "created")
	s.log.Info("transport registered", "transport_id", t.TransportID, "lot_id", t.LotID)
	v := views.Transport(t)
	return &v, nil
}

func buildTransport(in service.TransportInput) (*entities.Transport, error) {
	departed, err := rules.ParseTimestamp("fecha_salida", in.DepartedAt)
	if err != nil {
		return nil, apperr.Format(err.Error(), err)
	}
	avg, err := rules.ParseDecimal("temperatura_promedio", in.TempAvg)
	if err != nil {
		return nil, apperr.Format(err.Error(), err)
	}
	// bounds were validated, so these parse
	lo, _ := rules.ParseDecimal("temperatura_minima", in.TempMin)
	hi, _ := rules.ParseDecimal("temperatura_maxima", in.TempMax)
	return &entities.Transport{
		LotID:       in.LotID,
		ProcessID:   in.ProcessID,
		DepartedAt:  departed.UTC(),
		Vehicle:     in.Vehicle,
		Driver:      in.Driver,
		Destination: in.Destination,
		TempMin:     lo.Round(rules.TemperaturePlaces),
		TempMax:     hi.Round(rules.TemperaturePlaces),
		TempAvg:     avg.Round(rules.TemperaturePlaces),
	}, nil
}

func (s *transportSvc) RegisterDelivery(ctx context.Context, id uint, in service.DeliveryInput) (*views.DeliveryView, error) {
	t, err := s.r.FindByID(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, s.reject("delivery", apperr.NotFound("transport"))
		}
		return nil, s.fail("delivery", err)
	}

	deliveredAt := s.clock.Now()
	if rules.Present(in.DeliveredAt) {
		deliveredAt, err = rules.ParseTimestamp("fecha_entrega", in.DeliveredAt)
		if err != nil {
			return nil, s.reject("delivery", apperr.Format(err.Error(), err))
		}
	}
	deliveredAt = deliveredAt.UTC()

	receivedBy := ""
	if in.ReceivedBy != nil {
		receivedBy = *in.ReceivedBy
	}
	status := entities.DeliveryStatusDelivered
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		status = strings.TrimSpace(*in.Status)
	}

	t.DeliveredAt = &deliveredAt
	t.ReceivedBy = receivedBy
	t.DeliveryStatus = status
	if err := s.r.Update(ctx, t); err != nil {
		return nil, s.fail("delivery", err)
	}
	s.metrics.IncRegistration("delivery", "created")
	s.log.Info("delivery registered", "transport_id", t.TransportID, "status", status)
	v := views.Delivery(t)
	return &v, nil
}

func (s *transportSvc) RecordTemperature(ctx context.Context, id uint, reading any) (*views.TransportView, error) {
	value, err := rules.ParseDecimal("temperatura", reading)
	if err != nil {
		return nil, s.reject("temperature reading", apperr.Format(err.Error(), err))
	}
	value = value.Round(rules.TemperaturePlaces)
	if value.LessThan(rules.LowestRecordedTemp) {
		return nil, s.reject("temperature reading", apperr.RuleViolation(rules.ReasonMinTempOutOfRange))
	}
	if value.GreaterThan(rules.HighestRecordedTemp) {
		return nil, s.reject("temperature reading", apperr.RuleViolation(rules.ReasonMaxTempOutOfRange))
	}

	t, err := s.r.FindByID(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, s.reject("temperature reading", apperr.NotFound("transport"))
		}
		return nil, s.fail("temperature reading", err)
	}

	if value.LessThan(t.TempMin) {
		t.TempMin = value
	}
	if value.GreaterThan(t.TempMax) {
		t.TempMax = value
	}
	if err := s.r.Update(ctx, t); err != nil {
		return nil, s.fail("temperature reading", err)
	}
	s.metrics.IncRegistration("temperature_reading", "created")
	v := views.Transport(t)
	return &v, nil
}

func (s *transportSvc) reject(entity string, err error) error {
	s.metrics.IncRegistration(metricEntity(entity), "rejected")
	s.log.Info(entity+" rejected", "reason", err.Error())
	return err
}

func (s *transportSvc) fail(entity string, cause error) error {
	s.metrics.IncRegistration(metricEntity(entity), "failed")
	s.log.Error(entity+" persistence failed", "err", cause)
	return apperr.Persistence(entity, cause)
}

func metricEntity(entity string) string {
	return strings.ReplaceAll(entity, " ", "_")
}
