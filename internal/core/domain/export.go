package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
)

// ExportKind identifies one of the exportable reports.
type ExportKind string

const (
	ExportIncome   ExportKind = "income"
	ExportPlanning ExportKind = "planning"
	ExportActual   ExportKind = "actual"
	ExportBalance  ExportKind = "balance"
)

// ParseExportKind validates a report kind coming from a URL or a flag.
func ParseExportKind(s string) (ExportKind, error) {
	switch k := ExportKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ExportIncome, ExportPlanning, ExportActual, ExportBalance:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown report kind %q", apperrors.ErrValidation, s)
}

// IsTabular reports whether the kind is rendered by the generic tabular builder.
func (k ExportKind) IsTabular() bool {
	return k == ExportIncome || k == ExportPlanning || k == ExportActual
}

// ExportFormat is the file format of an export.
type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatCSV  ExportFormat = "csv"

	// FormatGoogleSheets marks published spreadsheets in the export history.
	// It is not a file format and is rejected by ParseExportFormat.
	FormatGoogleSheets ExportFormat = "gsheets"
)

// ParseExportFormat validates a format name; empty means xlsx.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatXLSX, nil
	case FormatXLSX, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", apperrors.ErrValidation, s)
}

// ExportRecord is one entry of the export history.
type ExportRecord struct {
	ID        string       `json:"id"`
	UserID    int64        `json:"userID"`
	Username  string       `json:"username"`
	Kind      ExportKind   `json:"kind"`
	Format    ExportFormat `json:"format"`
	Filename  string       `json:"filename"`
	RowCount  int          `json:"rowCount"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PublishedSheet identifies a spreadsheet created in Google Sheets.
type PublishedSheet struct {
	SpreadsheetID string `json:"spreadsheetID"`
	URL           string `json:"url"`
}
