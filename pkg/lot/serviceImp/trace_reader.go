package serviceImp

import (
	"context"

	"traza/entities"
	lotRepo "traza/pkg/lot/repository"
	processRepo "traza/pkg/process/repository"
	qualityRepo "traza/pkg/quality/repository"
	transportRepo "traza/pkg/transport/repository"
)

// traceReader joins the per-entity repositories into the view the completeness check needs.
type traceReader struct {
	lots       lotRepo.LotRepository
	processes  processRepo.ProcessRepository
	controls   qualityRepo.QualityRepository
	transports transportRepo.TransportRepository
}

func (r traceReader) FindLot(ctx context.Context, id uint) (*entities.Lot, error) {
	return r.lots.FindByID(ctx, id)
}

func (r traceReader) ListProcessesByLot(ctx context.Context, lotID uint) ([]entities.Process, error) {
	return r.processes.ListByLot(ctx, lotID)
}

func (r traceReader) ListTransportsByLot(ctx context.Context, lotID uint) ([]entities.Transport, error) {
	return r.transports.ListByLot(ctx, lotID)
}

func (r traceReader) ListControlsByProcess(ctx context.Context, processID uint) ([]entities.QualityControl, error) {
	return r.controls.ListByProcess(ctx, processID)
}
