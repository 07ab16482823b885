package rules

import (
	"context"

	"traza/entities"
	"traza/pkg/apperr"
)

const (
	ReasonLotNotFound       = "lot not found"
	ReasonMissingProcess    = "missing transformation process"
	ReasonMissingTransport  = "missing transport record"
	ReasonMissingApproval   = "missing approved quality control"
	ReasonTraceabilityValid = "traceability complete"
)

// TraceReader is the storage a completeness check walks.
type TraceReader interface {
	FindLot(ctx context.Context, id uint) (*entities.Lot, error)
	ListProcessesByLot(ctx context.Context, lotID uint) ([]entities.Process, error)
	ListTransportsByLot(ctx context.Context, lotID uint) ([]entities.Transport, error)
	ListControlsByProcess(ctx context.Context, processID uint) ([]entities.QualityControl, error)
}

// Completeness decides whether the stored record of a lot covers its custody chain: at
// least one process, at least one transport, and one approved control on any process.
// Checks run in that order and the first failure names the reason. A single approval is
// enough even if other controls were rejected.
func Completeness(ctx context.Context, r TraceReader, lotID uint) (bool, string, error) {
	if _, err := r.FindLot(ctx, lotID); err != nil {
		if apperr.IsNotFound(err) {
			return false, ReasonLotNotFound, nil
		}
		return false, "", err
	}

	processes, err := r.ListProcessesByLot(ctx, lotID)
	if err != nil {
		return false, "", err
	}
	if len(processes) == 0 {
		return false, ReasonMissingProcess, nil
	}

	transports, err := r.ListTransportsByLot(ctx, lotID)
	if err != nil {
		return false, "", err
	}
	if len(transports) == 0 {
		return false, ReasonMissingTransport, nil
	}

	for _, p := range processes {
		controls, err := r.ListControlsByProcess(ctx, p.ProcessID)
		if err != nil {
			return false, "", err
		}
		if HasApproval(controls) {
			return true, ReasonTraceabilityValid, nil
		}
	}
	return false, ReasonMissingApproval, nil
}

func HasApproval(controls []entities.QualityControl) bool {
	for _, c := range controls {
		if c.Status == entities.ControlApproved {
			return true
		}
	}
	return false
}
