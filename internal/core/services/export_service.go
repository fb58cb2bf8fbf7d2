package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/report"
	"github.com/SscSPs/contracts_tracker/internal/utils/pagination"
	"github.com/google/uuid"
)

// Analytics event names.
const (
	EventReportExported  = "report_exported"
	EventReportPublished = "report_published"
)

// exportService implements the ExportSvcFacade interface
type exportService struct {
	BaseService
	contracts portsrepo.ContractsReader
	history   portsrepo.ExportHistoryRepositoryFacade
	publisher portssvc.SheetsPublisher
	tracker   portssvc.EventTracker
}

// ExportServiceOption is a functional option for configuring the export service
type ExportServiceOption func(*exportService)

// WithExportClock sets the clock used for file names and month columns.
func WithExportClock(now func() time.Time) ExportServiceOption {
	return func(s *exportService) {
		s.Now = now
	}
}

// WithExportHistory records every export in repo.
func WithExportHistory(repo portsrepo.ExportHistoryRepositoryFacade) ExportServiceOption {
	return func(s *exportService) {
		s.history = repo
	}
}

// WithSheetsPublisher enables publishing to Google Sheets.
func WithSheetsPublisher(p portssvc.SheetsPublisher) ExportServiceOption {
	return func(s *exportService) {
		s.publisher = p
	}
}

// WithEventTracker reports exports to product analytics.
func WithEventTracker(t portssvc.EventTracker) ExportServiceOption {
	return func(s *exportService) {
		s.tracker = t
	}
}

// NewExportService creates a new export service with the provided options
func NewExportService(contracts portsrepo.ContractsReader, options ...ExportServiceOption) portssvc.ExportSvcFacade {
	svc := &exportService{contracts: contracts}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure exportService implements the ExportSvcFacade interface
var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// Export builds the requested report and encodes it in the requested format.
func (s *exportService) Export(ctx context.Context, user *domain.User, req domain.ExportRequest) (*domain.ExportResult, error) {
	if err := s.authorize(ctx, user); err != nil {
		return nil, err
	}

	emitter, err := report.EmitterFor(req.Format)
	if err != nil {
		return nil, err
	}

	now := s.CurrentTime()
	wb, rowCount, err := s.buildWorkbook(ctx, req.Kind, req.Filter, now)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := emitter.Encode(&buf, wb); err != nil {
		s.LogError(ctx, err, "Failed to encode report",
			slog.String("kind", string(req.Kind)),
			slog.String("format", string(req.Format)))
		return nil, fmt.Errorf("failed to encode %s report: %w", req.Kind, err)
	}

	result := &domain.ExportResult{
		Kind:        req.Kind,
		Format:      emitter.Format(),
		Filename:    report.Filename(report.BaseName(req.Kind), now, emitter.Extension()),
		ContentType: emitter.ContentType(),
		RowCount:    rowCount,
		Data:        buf.Bytes(),
	}

	s.record(ctx, user, domain.ExportRecord{
		Kind:      result.Kind,
		Format:    result.Format,
		Filename:  result.Filename,
		RowCount:  rowCount,
		CreatedAt: now,
	})
	s.track(user, EventReportExported, map[string]any{
		"kind":      string(result.Kind),
		"format":    string(result.Format),
		"row_count": rowCount,
	})

	s.LogInfo(ctx, "Report exported",
		slog.String("kind", string(result.Kind)),
		slog.String("format", string(result.Format)),
		slog.String("filename", result.Filename),
		slog.Int("row_count", rowCount),
		slog.Int("bytes", len(result.Data)))
	return result, nil
}

// Publish builds the requested report and writes it to a new Google spreadsheet.
func (s *exportService) Publish(ctx context.Context, user *domain.User, kind domain.ExportKind, filter domain.TableFilter) (*domain.PublishedSheet, error) {
	if err := s.authorize(ctx, user); err != nil {
		return nil, err
	}
	if s.publisher == nil {
		return nil, fmt.Errorf("%w: google sheets publishing", apperrors.ErrNotConfigured)
	}

	now := s.CurrentTime()
	wb, rowCount, err := s.buildWorkbook(ctx, kind, filter, now)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s %s", report.Title(kind), now.Format(time.DateOnly))
	published, err := s.publisher.Publish(ctx, title, wb)
	if err != nil {
		s.LogError(ctx, err, "Failed to publish report", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstream, err)
	}

	s.record(ctx, user, domain.ExportRecord{
		Kind:      kind,
		Format:    domain.FormatGoogleSheets,
		Filename:  published.URL,
		RowCount:  rowCount,
		CreatedAt: now,
	})
	s.track(user, EventReportPublished, map[string]any{
		"kind":      string(kind),
		"row_count": rowCount,
	})

	s.LogInfo(ctx, "Report published",
		slog.String("kind", string(kind)),
		slog.String("spreadsheet_id", published.SpreadsheetID))
	return published, nil
}

// History lists the exports of user, newest first.
func (s *exportService) History(ctx context.Context, user *domain.User, limit int, nextToken *string) (*domain.ExportHistoryPage, error) {
	if err := s.RequireUser(ctx, user); err != nil {
		return nil, err
	}
	if s.history == nil {
		return nil, fmt.Errorf("%w: export history", apperrors.ErrNotConfigured)
	}

	records, next, err := s.history.ListExportRecords(ctx, user.ID, pagination.NormalizeLimit(limit), nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list export history", slog.Int64("user_id", user.ID))
		return nil, err
	}
	return &domain.ExportHistoryPage{Records: records, NextToken: next}, nil
}

func (s *exportService) authorize(ctx context.Context, user *domain.User) error {
	if err := s.RequireUser(ctx, user); err != nil {
		return err
	}
	if !ResolvePermissions(user, nil).Has(domain.CapExport) {
		return fmt.Errorf("%w: export not allowed", apperrors.ErrForbidden)
	}
	return nil
}

// buildWorkbook fetches the rows of kind and lays them out. The second result is
// the number of data rows (balance entries for the balance report).
func (s *exportService) buildWorkbook(ctx context.Context, kind domain.ExportKind, filter domain.TableFilter, now time.Time) (report.Workbook, int, error) {
	if kind == domain.ExportBalance {
		resp, err := s.contracts.Balance(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch balance")
			return report.Workbook{}, 0, fmt.Errorf("failed to fetch balance: %w", err)
		}
		for _, e := range resp.Contracts {
			if !e.Reconciled() {
				s.LogWarn(ctx, "Balance aggregates disagree with expense contracts",
					slog.Int64("income_contract_id", e.Income.ID),
					slog.String("income_contract", e.Income.Number))
			}
		}
		return report.BuildBalanceReport(resp.Contracts), len(resp.Contracts), nil
	}

	rows, err := loadTableRows(ctx, s.contracts, kind, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load table rows", slog.String("kind", string(kind)))
		return report.Workbook{}, 0, err
	}
	return report.BuildReport(rows.Records(), report.Columns(kind, now), report.Title(kind)), rows.Len(), nil
}

// record stores an export in the history. A failure is logged and does not fail the export.
func (s *exportService) record(ctx context.Context, user *domain.User, rec domain.ExportRecord) {
	if s.history == nil {
		return
	}
	rec.ID = uuid.NewString()
	rec.UserID = user.ID
	rec.Username = user.Username
	if err := s.history.SaveExportRecord(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to record export", slog.String("export_id", rec.ID))
	}
}

func (s *exportService) track(user *domain.User, event string, props map[string]any) {
	if s.tracker == nil {
		return
	}
	s.tracker.Enqueue(strconv.FormatInt(user.ID, 10), event, props)
}
