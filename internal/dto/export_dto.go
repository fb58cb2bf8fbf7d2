package dto

import (
	"time"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// ExportQuery holds the query parameters of a file export.
type ExportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=xlsx csv XLSX CSV"`
	domain.TableFilter
}

// ListExportHistoryParams defines the query parameters for listing past exports.
type ListExportHistoryParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ExportRecordResponse is one past export.
type ExportRecordResponse struct {
	ExportID  string    `json:"exportID"`
	Kind      string    `json:"kind"`
	Format    string    `json:"format"`
	Filename  string    `json:"filename"`
	RowCount  int       `json:"rowCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListExportHistoryResponse is one page of the export history.
type ListExportHistoryResponse struct {
	Exports   []ExportRecordResponse `json:"exports"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// PublishResponse points at a spreadsheet created in Google Sheets.
type PublishResponse struct {
	SpreadsheetID string `json:"spreadsheetID"`
	URL           string `json:"url"`
}

// ToListExportHistoryResponse converts a history page to its response DTO.
func ToListExportHistoryResponse(page *domain.ExportHistoryPage) ListExportHistoryResponse {
	exports := make([]ExportRecordResponse, len(page.Records))
	for i, r := range page.Records {
		exports[i] = ExportRecordResponse{
			ExportID:  r.ID,
			Kind:      string(r.Kind),
			Format:    string(r.Format),
			Filename:  r.Filename,
			RowCount:  r.RowCount,
			CreatedAt: r.CreatedAt,
		}
	}
	return ListExportHistoryResponse{Exports: exports, NextToken: page.NextToken}
}

// ToPublishResponse converts a published sheet to its response DTO.
func ToPublishResponse(p *domain.PublishedSheet) PublishResponse {
	return PublishResponse{SpreadsheetID: p.SpreadsheetID, URL: p.URL}
}
