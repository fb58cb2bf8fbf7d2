package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/utils"
	"github.com/SscSPs/contracts_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// planService implements the PlanSvcFacade interface
type planService struct {
	BaseService
	contracts portsrepo.ContractsReader
}

// PlanServiceOption is a functional option for configuring the plan service
type PlanServiceOption func(*planService)

// WithPlanClock sets the clock used for the three-month rollup.
func WithPlanClock(now func() time.Time) PlanServiceOption {
	return func(s *planService) {
		s.Now = now
	}
}

// NewPlanService creates a new plan service with the provided options
func NewPlanService(contracts portsrepo.ContractsReader, options ...PlanServiceOption) portssvc.PlanSvcFacade {
	svc := &planService{contracts: contracts}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure planService implements the PlanSvcFacade interface
var _ portssvc.PlanSvcFacade = (*planService)(nil)

// FinancingPlan lays the disbursement plan of an expense contract over its month grid.
func (s *planService) FinancingPlan(ctx context.Context, user *domain.User, contractID int64) (*domain.FinancingPlan, error) {
	if err := s.RequireUser(ctx, user); err != nil {
		return nil, err
	}
	if contractID <= 0 {
		return nil, fmt.Errorf("%w: contract id must be positive", apperrors.ErrValidation)
	}

	contract, err := s.contracts.ExpenseContract(ctx, contractID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch expense contract", slog.Int64("contract_id", contractID))
		return nil, err
	}

	entries, err := s.contracts.CalPlan(ctx, contractID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch financing plan", slog.Int64("contract_id", contractID))
		return nil, err
	}

	start := parseContractDate(contract.StartDate)
	end := parseContractDate(contract.EndDate)
	if start.IsZero() {
		s.LogWarn(ctx, "Expense contract has no readable start date",
			slog.Int64("contract_id", contractID),
			slog.String("start_date", contract.StartDate))
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount.Decimal())
	}

	ref := contract.Ref()
	return &domain.FinancingPlan{
		Contract:     *contract,
		Periods:      accounting.PlanPeriods(start, end, entries),
		Rollup:       accounting.RollupMonthlyPlan(entries, s.CurrentTime()),
		Total:        utils.FormatCurrency(&total),
		Capabilities: ResolvePermissions(user, &ref),
	}, nil
}

// parseContractDate reads the date part of a contract date; the zero time means unknown.
func parseContractDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(time.DateOnly) {
		raw = raw[:len(time.DateOnly)]
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
