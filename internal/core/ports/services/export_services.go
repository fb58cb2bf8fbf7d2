package services

import (
	"context"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/report"
)

// SheetsPublisher writes a workbook to a new online spreadsheet.
type SheetsPublisher interface {
	Publish(ctx context.Context, title string, wb report.Workbook) (*domain.PublishedSheet, error)
}

// ExportSvcFacade produces spreadsheet exports of the contract tables.
type ExportSvcFacade interface {
	// Export builds and encodes the requested report.
	Export(ctx context.Context, user *domain.User, req domain.ExportRequest) (*domain.ExportResult, error)

	// Publish builds the requested report and publishes it to Google Sheets.
	Publish(ctx context.Context, user *domain.User, kind domain.ExportKind, filter domain.TableFilter) (*domain.PublishedSheet, error)

	// History lists the exports made by user, newest first.
	History(ctx context.Context, user *domain.User, limit int, nextToken *string) (*domain.ExportHistoryPage, error)
}

// EventTracker records product analytics events.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
