package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
)

// dumpReader serves the rows of a saved contracts API response. The dump holds
// exactly one response body, so only the reader method matching it succeeds.
type dumpReader struct {
	data []byte
}

var _ portsrepo.ContractsReader = (*dumpReader)(nil)

func newDumpReader(data []byte) *dumpReader {
	return &dumpReader{data: bytes.TrimSpace(data)}
}

func (r *dumpReader) IncomeContracts(_ context.Context) ([]domain.IncomeRow, error) {
	var rows []domain.IncomeRow
	return rows, r.decode(&rows, "income contracts")
}

func (r *dumpReader) PlanningContracts(_ context.Context) ([]domain.PlanningRow, error) {
	var rows []domain.PlanningRow
	return rows, r.decode(&rows, "planning contracts")
}

func (r *dumpReader) ActualContracts(_ context.Context) ([]domain.ActualRow, error) {
	var rows []domain.ActualRow
	return rows, r.decode(&rows, "actual contracts")
}

// Balance accepts both the {"contracts": [...]} body and a bare array of entries.
func (r *dumpReader) Balance(_ context.Context) (*domain.BalanceResponse, error) {
	if len(r.data) > 0 && r.data[0] == '[' {
		var entries []domain.BalanceEntry
		if err := r.decode(&entries, "balance entries"); err != nil {
			return nil, err
		}
		return &domain.BalanceResponse{Contracts: entries}, nil
	}
	var resp domain.BalanceResponse
	if err := r.decode(&resp, "balance"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *dumpReader) ExpenseContract(_ context.Context, id int64) (*domain.ExpenseContract, error) {
	return nil, fmt.Errorf("%w: expense contract %d is not part of a dump", apperrors.ErrNotFound, id)
}

func (r *dumpReader) CalPlan(_ context.Context, id int64) ([]domain.CalPlanEntry, error) {
	return nil, fmt.Errorf("%w: plan of expense contract %d is not part of a dump", apperrors.ErrNotFound, id)
}

func (r *dumpReader) decode(out any, what string) error {
	if err := json.Unmarshal(r.data, out); err != nil {
		return fmt.Errorf("%w: input is not a JSON dump of %s: %w", apperrors.ErrValidation, what, err)
	}
	return nil
}
