package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/core/services"
	"github.com/SscSPs/contracts_tracker/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var exportNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func exportClock() time.Time { return exportNow }

func TestExport_CSVRecordsHistoryAndTracks(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContractsRepository)
	history := new(MockExportHistoryRepository)
	tracker := new(MockEventTracker)
	svc := services.NewExportService(repo,
		services.WithExportClock(exportClock),
		services.WithExportHistory(history),
		services.WithEventTracker(tracker))

	repo.On("IncomeContracts", ctx).Return(incomeRows(), nil).Once()
	history.On("SaveExportRecord", ctx, mock.MatchedBy(func(r domain.ExportRecord) bool {
		return r.ID != "" &&
			r.UserID == economist.ID &&
			r.Username == economist.Username &&
			r.Kind == domain.ExportIncome &&
			r.Format == domain.FormatCSV &&
			r.Filename == "income-contracts_2025-03-10.csv" &&
			r.RowCount == 2 &&
			r.CreatedAt.Equal(exportNow)
	})).Return(nil).Once()
	tracker.On("Enqueue", "1", services.EventReportExported, map[string]any{
		"kind":      "income",
		"format":    "csv",
		"row_count": 2,
	}).Once()

	result, err := svc.Export(ctx, economist, domain.ExportRequest{
		Kind:   domain.ExportIncome,
		Format: domain.FormatCSV,
		Filter: domain.TableFilter{Contract: "Д-"},
	})

	require.NoError(t, err)
	assert.Equal(t, "income-contracts_2025-03-10.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	assert.Equal(t, 2, result.RowCount)
	assert.True(t, bytes.HasPrefix(result.Data, []byte("\xef\xbb\xbf")))
	assert.Contains(t, string(result.Data), "Д-102")
	assert.NotContains(t, string(result.Data), "К-7")
	repo.AssertExpectations(t)
	history.AssertExpectations(t)
	tracker.AssertExpectations(t)
}

func TestExport_XLSXBalance(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContractsRepository)
	svc := services.NewExportService(repo, services.WithExportClock(exportClock))

	repo.On("Balance", ctx).Return(&domain.BalanceResponse{Contracts: []domain.BalanceEntry{
		{Income: domain.BalanceIncome{ID: 1, Number: "Д-1", Amount: amt("100"), Paid: amt("50")}},
	}}, nil).Once()

	result, err := svc.Export(ctx, mesUser, domain.ExportRequest{Kind: domain.ExportBalance})

	require.NoError(t, err)
	assert.Equal(t, domain.FormatXLSX, result.Format)
	assert.Equal(t, "balance-by-contract_2025-03-10.xlsx", result.Filename)
	assert.Equal(t, 1, result.RowCount)
	// xlsx files are zip archives.
	assert.True(t, bytes.HasPrefix(result.Data, []byte("PK")))
	repo.AssertExpectations(t)
}

func TestExport_HistoryFailureDoesNotFailExport(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContractsRepository)
	history := new(MockExportHistoryRepository)
	svc := services.NewExportService(repo, services.WithExportClock(exportClock), services.WithExportHistory(history))

	repo.On("ActualContracts", ctx).Return([]domain.ActualRow{}, nil).Once()
	history.On("SaveExportRecord", ctx, mock.Anything).Return(errors.New("db down")).Once()

	result, err := svc.Export(ctx, economist, domain.ExportRequest{Kind: domain.ExportActual, Format: domain.FormatCSV})

	require.NoError(t, err)
	assert.Equal(t, 0, result.RowCount)
	history.AssertExpectations(t)
}

func TestExport_Errors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContractsRepository)
	svc := services.NewExportService(repo, services.WithExportClock(exportClock))

	_, err := svc.Export(ctx, nil, domain.ExportRequest{Kind: domain.ExportIncome})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Export(ctx, economist, domain.ExportRequest{Kind: domain.ExportIncome, Format: "pdf"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.On("PlanningContracts", ctx).Return(nil, apperrors.ErrUpstream).Once()
	_, err = svc.Export(ctx, economist, domain.ExportRequest{Kind: domain.ExportPlanning})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	repo.AssertExpectations(t)
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContractsRepository)
	history := new(MockExportHistoryRepository)
	publisher := new(MockSheetsPublisher)
	tracker := new(MockEventTracker)
	svc := services.NewExportService(repo,
		services.WithExportClock(exportClock),
		services.WithExportHistory(history),
		services.WithSheetsPublisher(publisher),
		services.WithEventTracker(tracker))

	published := &domain.PublishedSheet{SpreadsheetID: "sheet-1", URL: "https://docs.google.com/spreadsheets/d/sheet-1"}
	repo.On("PlanningContracts", ctx).Return(planningRows(), nil).Once()
	publisher.On("Publish", ctx, "Financing Planning for Expense Contracts 2025-03-10", mock.MatchedBy(func(wb report.Workbook) bool {
		return len(wb.Sheets) == 1
	})).Return(published, nil).Once()
	history.On("SaveExportRecord", ctx, mock.MatchedBy(func(r domain.ExportRecord) bool {
		return r.Format == domain.FormatGoogleSheets && r.Filename == published.URL && r.RowCount == 2
	})).Return(nil).Once()
	tracker.On("Enqueue", "1", services.EventReportPublished, mock.Anything).Once()

	got, err := svc.Publish(ctx, economist, domain.ExportPlanning, domain.TableFilter{})

	require.NoError(t, err)
	assert.Equal(t, published, got)
	publisher.AssertExpectations(t)
	history.AssertExpectations(t)
	tracker.AssertExpectations(t)
}

func TestPublish_Errors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContractsRepository)

	unconfigured := services.NewExportService(repo, services.WithExportClock(exportClock))
	_, err := unconfigured.Publish(ctx, economist, domain.ExportIncome, domain.TableFilter{})
	assert.ErrorIs(t, err, apperrors.ErrNotConfigured)

	publisher := new(MockSheetsPublisher)
	svc := services.NewExportService(repo, services.WithExportClock(exportClock), services.WithSheetsPublisher(publisher))
	repo.On("IncomeContracts", ctx).Return(incomeRows(), nil).Once()
	publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded")).Once()

	_, err = svc.Publish(ctx, economist, domain.ExportIncome, domain.TableFilter{})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	publisher.AssertExpectations(t)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContractsRepository)

	_, err := services.NewExportService(repo).History(ctx, economist, 10, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotConfigured)

	history := new(MockExportHistoryRepository)
	svc := services.NewExportService(repo, services.WithExportHistory(history))

	_, err = svc.History(ctx, nil, 10, nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	token := "abc"
	next := "def"
	records := []domain.ExportRecord{{ID: "r1", UserID: 1, Kind: domain.ExportIncome, Format: domain.FormatXLSX}}
	history.On("ListExportRecords", ctx, int64(1), 100, &token).Return(records, &next, nil).Once()

	page, err := svc.History(ctx, economist, 500, &token)

	require.NoError(t, err)
	assert.Equal(t, records, page.Records)
	require.NotNil(t, page.NextToken)
	assert.Equal(t, "def", *page.NextToken)
	history.AssertExpectations(t)
}
