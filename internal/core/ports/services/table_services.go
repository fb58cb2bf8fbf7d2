package services

import (
	"context"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// TableSvcFacade builds the view models of the live contract tables.
type TableSvcFacade interface {
	// Table builds the income, planning or actual table.
	Table(ctx context.Context, user *domain.User, kind domain.ExportKind, filter domain.TableFilter) (*domain.TableView, error)

	// Balance builds the balance table.
	Balance(ctx context.Context, user *domain.User) (*domain.BalanceView, error)
}

// PlanSvcFacade serves the financing plan of expense contracts.
type PlanSvcFacade interface {
	FinancingPlan(ctx context.Context, user *domain.User, contractID int64) (*domain.FinancingPlan, error)
}
