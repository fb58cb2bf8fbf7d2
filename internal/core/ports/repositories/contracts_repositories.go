package repositories

import (
	"context"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// ContractsReader defines read operations against the contracts API.
// Every call acts on behalf of the session carried by ctx.
type ContractsReader interface {
	IncomeContracts(ctx context.Context) ([]domain.IncomeRow, error)
	PlanningContracts(ctx context.Context) ([]domain.PlanningRow, error)
	ActualContracts(ctx context.Context) ([]domain.ActualRow, error)
	Balance(ctx context.Context) (*domain.BalanceResponse, error)

	// ExpenseContract retrieves the detail record of one expense contract.
	ExpenseContract(ctx context.Context, id int64) (*domain.ExpenseContract, error)

	// CalPlan retrieves the monthly disbursement plan of one expense contract.
	CalPlan(ctx context.Context, id int64) ([]domain.CalPlanEntry, error)
}

// SessionReader resolves the user behind the session carried by ctx.
type SessionReader interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// ContractsRepositoryFacade combines all contracts API interfaces
type ContractsRepositoryFacade interface {
	ContractsReader
	SessionReader

	// Ping checks that the contracts API is reachable.
	Ping(ctx context.Context) error
}
