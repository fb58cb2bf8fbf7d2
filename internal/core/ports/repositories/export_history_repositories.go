package repositories

import (
	"context"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// ExportHistoryReader defines read operations for the export history
type ExportHistoryReader interface {
	// ListExportRecords returns the exports made by a user, newest first.
	// The returned token is nil on the last page.
	ListExportRecords(ctx context.Context, userID int64, limit int, nextToken *string) ([]domain.ExportRecord, *string, error)
}

// ExportHistoryWriter defines write operations for the export history
type ExportHistoryWriter interface {
	// SaveExportRecord persists one finished export.
	SaveExportRecord(ctx context.Context, record domain.ExportRecord) error
}

// ExportHistoryRepositoryFacade combines all export history repository interfaces
type ExportHistoryRepositoryFacade interface {
	ExportHistoryReader
	ExportHistoryWriter

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
