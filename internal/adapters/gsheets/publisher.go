// Package gsheets publishes report workbooks as Google Sheets spreadsheets.
package gsheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/report"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Publisher creates one spreadsheet per published workbook using a service account.
type Publisher struct {
	sheets      *sheets.Service
	drive       *drive.Service
	shareDomain string
	logger      *slog.Logger
}

// NewPublisher authenticates with the service account key at credentialsFile.
// When shareDomain is set, every published spreadsheet is readable by that Google
// Workspace domain.
func NewPublisher(ctx context.Context, credentialsFile, shareDomain string, logger *slog.Logger) (*Publisher, error) {
	jsonKey, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, jwtConfig.TokenSource(ctx))
	sheetsSrv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	driveSrv, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create drive service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		sheets:      sheetsSrv,
		drive:       driveSrv,
		shareDomain: shareDomain,
		logger:      logger,
	}, nil
}

// Publish creates a spreadsheet titled title holding every sheet of wb.
func (p *Publisher) Publish(ctx context.Context, title string, wb report.Workbook) (*domain.PublishedSheet, error) {
	created, err := p.sheets.Spreadsheets.Create(NewSpreadsheet(title, wb)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	requests := BuildRequests(wb)
	if len(requests) > 0 {
		_, err = p.sheets.Spreadsheets.BatchUpdate(created.SpreadsheetId, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: requests,
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to write spreadsheet %s: %w", created.SpreadsheetId, err)
		}
	}

	if p.shareDomain != "" {
		_, err = p.drive.Permissions.Create(created.SpreadsheetId, &drive.Permission{
			Type:   "domain",
			Role:   "reader",
			Domain: p.shareDomain,
		}).Context(ctx).Do()
		if err != nil {
			// The spreadsheet exists already; the caller still gets its link.
			p.logger.Warn("failed to share spreadsheet",
				slog.String("spreadsheet_id", created.SpreadsheetId),
				slog.String("domain", p.shareDomain),
				slog.String("error", err.Error()))
		}
	}

	p.logger.Info("published spreadsheet",
		slog.String("spreadsheet_id", created.SpreadsheetId),
		slog.Int("requests", len(requests)))

	return &domain.PublishedSheet{SpreadsheetID: created.SpreadsheetId, URL: created.SpreadsheetUrl}, nil
}
