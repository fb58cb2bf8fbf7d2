package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/contracts_tracker/internal/report"
)

// tableRows holds the filtered rows of one tabular kind. Exactly one slice is used.
type tableRows struct {
	kind     domain.ExportKind
	income   []domain.IncomeRow
	planning []domain.PlanningRow
	actual   []domain.ActualRow
}

// loadTableRows fetches the rows of a tabular kind and applies filter.
func loadTableRows(ctx context.Context, contracts portsrepo.ContractsReader, kind domain.ExportKind, filter domain.TableFilter) (*tableRows, error) {
	out := &tableRows{kind: kind}
	switch kind {
	case domain.ExportIncome:
		rows, err := contracts.IncomeContracts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch income contracts: %w", err)
		}
		out.income = FilterRows(rows, filter.MatchesIncome)
	case domain.ExportPlanning:
		rows, err := contracts.PlanningContracts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch planning contracts: %w", err)
		}
		out.planning = FilterRows(rows, func(r domain.PlanningRow) bool { return filter.MatchesExpense(r.ExpenseCommon) })
	case domain.ExportActual:
		rows, err := contracts.ActualContracts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch actual contracts: %w", err)
		}
		out.actual = FilterRows(rows, func(r domain.ActualRow) bool { return filter.MatchesExpense(r.ExpenseCommon) })
	default:
		return nil, fmt.Errorf("%w: %q is not a tabular report", apperrors.ErrValidation, kind)
	}
	return out, nil
}

// FilterRows keeps the rows for which keep returns true. It never returns nil.
func FilterRows[R any](rows []R, keep func(R) bool) []R {
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (t *tableRows) Len() int {
	return len(t.income) + len(t.planning) + len(t.actual)
}

// Records exposes the rows to the report builder.
func (t *tableRows) Records() []report.Record {
	switch t.kind {
	case domain.ExportIncome:
		return report.Records(t.income)
	case domain.ExportPlanning:
		return report.Records(t.planning)
	default:
		return report.Records(t.actual)
	}
}
