package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type TableServiceTestSuite struct {
	suite.Suite
	mockRepo *MockContractsRepository
	service  portssvc.TableSvcFacade
	now      time.Time
}

func (suite *TableServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockContractsRepository)
	suite.now = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewTableService(suite.mockRepo, services.WithTableClock(func() time.Time { return suite.now }))
}

func (suite *TableServiceTestSuite) TestIncomeTable_FilterAndPaidStatus() {
	ctx := context.Background()
	suite.mockRepo.On("IncomeContracts", ctx).Return(incomeRows(), nil).Once()

	view, err := suite.service.Table(ctx, economist, domain.ExportIncome, domain.TableFilter{Contract: "д-"})

	suite.Require().NoError(err)
	suite.Equal("Income Contracts", view.Title)
	suite.Require().Len(view.Rows, 2)
	suite.Equal(domain.PaidExact, view.Rows[0].PaidStatus)
	suite.Equal(domain.PaidPartial, view.Rows[1].PaidStatus)
	suite.True(view.Rows[0].Capabilities.Has(domain.CapEditPaid))
	suite.Empty(view.Totals)
	suite.Nil(view.MonthNames)
	suite.Len(view.Columns, 5)
	suite.True(view.Capabilities.Has(domain.CapCreateContract))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TableServiceTestSuite) TestIncomeTable_OverpaidAndClientFilter() {
	ctx := context.Background()
	suite.mockRepo.On("IncomeContracts", ctx).Return(incomeRows(), nil).Once()

	view, err := suite.service.Table(ctx, ptsUser, domain.ExportIncome, domain.TableFilter{Client: "ленэнерго", Name: "ignored for income"})

	suite.Require().NoError(err)
	suite.Require().Len(view.Rows, 1)
	suite.Equal(domain.PaidOverpaid, view.Rows[0].PaidStatus)
	suite.False(view.Rows[0].Capabilities.Has(domain.CapEditPaid))
}

func (suite *TableServiceTestSuite) TestPlanningTable_TotalsAndMonthNames() {
	ctx := context.Background()
	suite.mockRepo.On("PlanningContracts", ctx).Return(planningRows(), nil).Once()

	view, err := suite.service.Table(ctx, mesUser, domain.ExportPlanning, domain.TableFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(view.Rows, 2)
	suite.Equal("1 500,00 ₽", view.Totals["advance_amount"])
	suite.Equal("100,00 ₽", view.Totals["current_month"])
	suite.Equal("50,50 ₽", view.Totals["next_month_1"])
	suite.Equal("150,50 ₽", view.Totals["three_month_total"])
	_, hasNext2 := view.Totals["next_month_2"]
	suite.False(hasNext2)
	_, hasContractAmount := view.Totals["contract_amount"]
	suite.False(hasContractAmount)

	suite.Equal("March 2025", view.MonthNames["current_month"])
	suite.Equal("May 2025", view.MonthNames["next_month_2"])
	suite.Equal("April 2025", view.Columns[9].Label)

	suite.True(view.Rows[0].Capabilities.Has(domain.CapEditContractorPayments))
	suite.False(view.Rows[1].Capabilities.Has(domain.CapEditContractorPayments))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TableServiceTestSuite) TestPlanningTable_TypeFilterIsExact() {
	ctx := context.Background()
	suite.mockRepo.On("PlanningContracts", ctx).Return(planningRows(), nil).Once()

	view, err := suite.service.Table(ctx, economist, domain.ExportPlanning, domain.TableFilter{TypeContract: domain.TypeInvestmentProgram})

	suite.Require().NoError(err)
	suite.Require().Len(view.Rows, 1)
	suite.Equal(int64(11), view.Rows[0].Data.(domain.PlanningRow).ID)
	suite.Equal("1 200,00 ₽", view.Totals["advance_amount"])
}

func (suite *TableServiceTestSuite) TestActualTable_EmptyTotals() {
	ctx := context.Background()
	suite.mockRepo.On("ActualContracts", ctx).Return([]domain.ActualRow{}, nil).Once()

	view, err := suite.service.Table(ctx, economist, domain.ExportActual, domain.TableFilter{})

	suite.Require().NoError(err)
	suite.Empty(view.Rows)
	suite.NotNil(view.Totals)
	suite.Empty(view.Totals)
	suite.Len(view.Columns, 12)
}

func (suite *TableServiceTestSuite) TestTable_Errors() {
	ctx := context.Background()

	_, err := suite.service.Table(ctx, nil, domain.ExportIncome, domain.TableFilter{})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.Table(ctx, economist, domain.ExportBalance, domain.TableFilter{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.On("ActualContracts", ctx).Return(nil, apperrors.ErrUpstream).Once()
	_, err = suite.service.Table(ctx, economist, domain.ExportActual, domain.TableFilter{})
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TableServiceTestSuite) TestBalance() {
	ctx := context.Background()
	resp := &domain.BalanceResponse{Contracts: []domain.BalanceEntry{
		{
			Income: domain.BalanceIncome{ID: 1, Number: "Д-1", Client: "ЛОЭСК", Amount: amt("1000"), Paid: amt("800")},
			Expenses: []domain.BalanceExpense{
				{ID: 10, Number: "Р-1", Amount: amt("600"), Paid: amt("900")},
			},
			TotalExpense: amt("600"),
			TotalPaid:    amt("900"),
		},
		{
			Income:       domain.BalanceIncome{ID: 2, Number: "Д-2", Amount: amt("200"), Paid: amt("0")},
			TotalExpense: amt("50"),
		},
	}}
	suite.mockRepo.On("Balance", ctx).Return(resp, nil).Once()

	view, err := suite.service.Balance(ctx, economist)

	suite.Require().NoError(err)
	suite.Equal("Balance by Contracts", view.Title)
	suite.Require().Len(view.Entries, 2)

	first := view.Entries[0]
	suite.Equal("400,00 ₽", first.DiffAmount)
	suite.Equal("-100,00 ₽", first.DiffPaid)
	suite.False(first.DiffAmountNegative)
	suite.True(first.DiffPaidNegative)
	suite.True(first.Reconciled)
	suite.True(first.Capabilities.Has(domain.CapEditPaid))

	second := view.Entries[1]
	suite.Equal("50,00 ₽", second.ExpenseAmount)
	suite.False(second.Reconciled)

	suite.Equal("1 200,00 ₽", view.Totals.IncomeAmount)
	suite.Equal("650,00 ₽", view.Totals.ExpenseAmount)
	suite.Equal("550,00 ₽", view.Totals.DiffAmount)
	suite.Equal("-100,00 ₽", view.Totals.DiffPaid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TableServiceTestSuite))
}
