package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/report"
	"github.com/SscSPs/contracts_tracker/internal/utils"
	"github.com/SscSPs/contracts_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// tableService implements the TableSvcFacade interface
type tableService struct {
	BaseService
	contracts portsrepo.ContractsReader
}

// TableServiceOption is a functional option for configuring the table service
type TableServiceOption func(*tableService)

// WithTableClock sets the clock used to title the month columns.
func WithTableClock(now func() time.Time) TableServiceOption {
	return func(s *tableService) {
		s.Now = now
	}
}

// NewTableService creates a new table service with the provided options
func NewTableService(contracts portsrepo.ContractsReader, options ...TableServiceOption) portssvc.TableSvcFacade {
	svc := &tableService{contracts: contracts}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure tableService implements the TableSvcFacade interface
var _ portssvc.TableSvcFacade = (*tableService)(nil)

// Table builds the view model of a tabular kind.
func (s *tableService) Table(ctx context.Context, user *domain.User, kind domain.ExportKind, filter domain.TableFilter) (*domain.TableView, error) {
	if err := s.RequireUser(ctx, user); err != nil {
		return nil, err
	}

	rows, err := loadTableRows(ctx, s.contracts, kind, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load table rows", slog.String("kind", string(kind)))
		return nil, err
	}

	now := s.CurrentTime()
	view := &domain.TableView{
		Kind:         kind,
		Title:        report.Title(kind),
		Columns:      tableColumns(report.Columns(kind, now)),
		Capabilities: ResolvePermissions(user, nil),
	}

	keys := report.TotalledKeys(kind)
	var totals map[string]decimal.Decimal
	switch kind {
	case domain.ExportIncome:
		view.Rows = make([]domain.TableRow, len(rows.income))
		for i, r := range rows.income {
			ref := r.Ref()
			view.Rows[i] = domain.TableRow{
				Data:         r,
				Capabilities: ResolvePermissions(user, &ref),
				PaidStatus:   accounting.PaidStatusOf(r.Paid.Decimal(), r.Amount.Decimal()),
			}
		}
	case domain.ExportPlanning:
		view.Rows = withCapabilities(user, rows.planning)
		view.MonthNames = accounting.MonthNames(now)
		totals = accounting.ColumnTotals(rows.planning, keys)
	case domain.ExportActual:
		view.Rows = withCapabilities(user, rows.actual)
		totals = accounting.ColumnTotals(rows.actual, keys)
	}
	view.Totals = formatTotals(totals)

	s.LogDebug(ctx, "Table built",
		slog.String("kind", string(kind)),
		slog.Int("row_count", len(view.Rows)))
	return view, nil
}

// Balance builds the balance view model.
func (s *tableService) Balance(ctx context.Context, user *domain.User) (*domain.BalanceView, error) {
	if err := s.RequireUser(ctx, user); err != nil {
		return nil, err
	}

	resp, err := s.contracts.Balance(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch balance")
		return nil, err
	}

	view := &domain.BalanceView{
		Title:        report.BalanceTitle,
		Entries:      make([]domain.BalanceEntryView, len(resp.Contracts)),
		Capabilities: ResolvePermissions(user, nil),
	}
	for i, e := range resp.Contracts {
		expense, paid := e.Totals()
		diffAmount, diffPaid := accounting.BalanceDifferential(e)
		ref := domain.ContractRef{ID: e.Income.ID, Kind: domain.ContractIncome, Client: e.Income.Client}
		reconciled := e.Reconciled()
		if !reconciled {
			s.LogWarn(ctx, "Balance aggregates disagree with expense contracts",
				slog.Int64("income_contract_id", e.Income.ID),
				slog.String("income_contract", e.Income.Number))
		}
		view.Entries[i] = domain.BalanceEntryView{
			Entry:              e,
			ExpenseAmount:      utils.FormatCurrency(&expense),
			ExpensePaid:        utils.FormatCurrency(&paid),
			DiffAmount:         utils.FormatCurrency(&diffAmount),
			DiffPaid:           utils.FormatCurrency(&diffPaid),
			DiffAmountNegative: diffAmount.IsNegative(),
			DiffPaidNegative:   diffPaid.IsNegative(),
			Reconciled:         reconciled,
			Capabilities:       ResolvePermissions(user, &ref),
		}
	}

	t := report.SumBalance(resp.Contracts)
	diffAmount, diffPaid := t.DiffAmount(), t.DiffPaid()
	view.Totals = domain.BalanceTotalsView{
		IncomeAmount:  utils.FormatCurrency(&t.IncomeAmount),
		IncomePaid:    utils.FormatCurrency(&t.IncomePaid),
		ExpenseAmount: utils.FormatCurrency(&t.Expense),
		ExpensePaid:   utils.FormatCurrency(&t.ExpensePaid),
		DiffAmount:    utils.FormatCurrency(&diffAmount),
		DiffPaid:      utils.FormatCurrency(&diffPaid),
	}
	return view, nil
}

type referenced interface {
	Ref() domain.ContractRef
}

func withCapabilities[R referenced](user *domain.User, rows []R) []domain.TableRow {
	out := make([]domain.TableRow, len(rows))
	for i, r := range rows {
		ref := r.Ref()
		out[i] = domain.TableRow{Data: r, Capabilities: ResolvePermissions(user, &ref)}
	}
	return out
}

func tableColumns(specs []report.ColumnSpec) []domain.TableColumn {
	out := make([]domain.TableColumn, len(specs))
	for i, c := range specs {
		out[i] = domain.TableColumn{Key: c.Key, Label: c.Label, Currency: c.IsCurrency()}
	}
	return out
}

func formatTotals(totals map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(totals))
	for key, v := range totals {
		out[key] = utils.FormatCurrency(&v)
	}
	return out
}
