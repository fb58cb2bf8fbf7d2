package handlers_test

import (
	"context"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) UserFromSession(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock TableService ---
type MockTableService struct {
	mock.Mock
}

func (m *MockTableService) Table(ctx context.Context, user *domain.User, kind domain.ExportKind, filter domain.TableFilter) (*domain.TableView, error) {
	args := m.Called(ctx, user, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableView), args.Error(1)
}

func (m *MockTableService) Balance(ctx context.Context, user *domain.User) (*domain.BalanceView, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceView), args.Error(1)
}

var _ portssvc.TableSvcFacade = (*MockTableService)(nil)

// --- Mock PlanService ---
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) FinancingPlan(ctx context.Context, user *domain.User, contractID int64) (*domain.FinancingPlan, error) {
	args := m.Called(ctx, user, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancingPlan), args.Error(1)
}

var _ portssvc.PlanSvcFacade = (*MockPlanService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, user *domain.User, req domain.ExportRequest) (*domain.ExportResult, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportResult), args.Error(1)
}

func (m *MockExportService) Publish(ctx context.Context, user *domain.User, kind domain.ExportKind, filter domain.TableFilter) (*domain.PublishedSheet, error) {
	args := m.Called(ctx, user, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublishedSheet), args.Error(1)
}

func (m *MockExportService) History(ctx context.Context, user *domain.User, limit int, nextToken *string) (*domain.ExportHistoryPage, error) {
	args := m.Called(ctx, user, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportHistoryPage), args.Error(1)
}

var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)

// --- Mock Pinger ---
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
