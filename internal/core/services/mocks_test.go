package services_test

import (
	"context"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/report"
	"github.com/stretchr/testify/mock"
)

// --- Mock ContractsRepository ---
type MockContractsRepository struct {
	mock.Mock
}

func (m *MockContractsRepository) IncomeContracts(ctx context.Context) ([]domain.IncomeRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeRow), args.Error(1)
}

func (m *MockContractsRepository) PlanningContracts(ctx context.Context) ([]domain.PlanningRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlanningRow), args.Error(1)
}

func (m *MockContractsRepository) ActualContracts(ctx context.Context) ([]domain.ActualRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActualRow), args.Error(1)
}

func (m *MockContractsRepository) Balance(ctx context.Context) (*domain.BalanceResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceResponse), args.Error(1)
}

func (m *MockContractsRepository) ExpenseContract(ctx context.Context, id int64) (*domain.ExpenseContract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseContract), args.Error(1)
}

func (m *MockContractsRepository) CalPlan(ctx context.Context, id int64) ([]domain.CalPlanEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalPlanEntry), args.Error(1)
}

func (m *MockContractsRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockContractsRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock ExportHistoryRepository ---
type MockExportHistoryRepository struct {
	mock.Mock
}

func (m *MockExportHistoryRepository) SaveExportRecord(ctx context.Context, record domain.ExportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockExportHistoryRepository) ListExportRecords(ctx context.Context, userID int64, limit int, nextToken *string) ([]domain.ExportRecord, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var records []domain.ExportRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.ExportRecord)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return records, next, args.Error(2)
}

func (m *MockExportHistoryRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock SheetsPublisher ---
type MockSheetsPublisher struct {
	mock.Mock
}

func (m *MockSheetsPublisher) Publish(ctx context.Context, title string, wb report.Workbook) (*domain.PublishedSheet, error) {
	args := m.Called(ctx, title, wb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublishedSheet), args.Error(1)
}

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// --- Fixtures ---

func amt(s string) domain.Amount {
	return domain.NewAmountFromString(s)
}

var (
	economist = &domain.User{ID: 1, Username: "ivanova", Role: domain.RoleEconomics}
	mesUser   = &domain.User{ID: 2, Username: "sidorov", Role: domain.RoleMES}
	ptsUser   = &domain.User{ID: 3, Username: "kuznetsov", Role: domain.RolePTS}
)

func incomeRows() []domain.IncomeRow {
	return []domain.IncomeRow{
		{ID: 1, Contract: "Д-101", Date: "2025-01-15", Client: "ЛОЭСК", Amount: amt("1000"), Paid: amt("1000")},
		{ID: 2, Contract: "Д-102", Date: "2025-02-01", Client: "МЭС", Amount: amt("500"), Paid: amt("200")},
		{ID: 3, Contract: "К-7", Date: "2025-02-10", Client: "Ленэнерго", Amount: amt("300"), Paid: amt("450")},
	}
}

func expenseCommon(id int64, contract, client, typ string) domain.ExpenseCommon {
	return domain.ExpenseCommon{
		ID:             id,
		TypeContract:   typ,
		Contract:       contract,
		Client:         client,
		StartDate:      "2025-01-01",
		EndDate:        "2025-12-31",
		Name:           "Реконструкция ПС " + contract,
		ContractAmount: amt("1000"),
		Advance:        "30%",
	}
}

func planningRows() []domain.PlanningRow {
	return []domain.PlanningRow{
		{
			ExpenseCommon:   expenseCommon(10, "Р-1", "МЭС", domain.TypeRepairProgram),
			AdvanceAmount:   amt("300"),
			CurrentMonth:    amt("100"),
			NextMonth1:      amt("50.5"),
			ThreeMonthTotal: amt("150.5"),
		},
		{
			ExpenseCommon:   expenseCommon(11, "Р-2", "СтройМонтаж", domain.TypeInvestmentProgram),
			AdvanceAmount:   amt("1 200,00 ₽"),
			CurrentMonth:    amt("n/a"),
			ThreeMonthTotal: amt("0"),
		},
	}
}
