package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/contracts_tracker/internal/models"
	"github.com/SscSPs/contracts_tracker/internal/utils/mapping"
	"github.com/SscSPs/contracts_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExportHistoryRepository struct {
	BaseRepository
}

// newPgxExportHistoryRepository creates a new repository for the export history.
func newPgxExportHistoryRepository(pool *pgxpool.Pool) portsrepo.ExportHistoryRepositoryFacade {
	return &PgxExportHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExportHistoryRepositoryFacade = (*PgxExportHistoryRepository)(nil)

// SaveExportRecord inserts one export record.
func (r *PgxExportHistoryRepository) SaveExportRecord(ctx context.Context, record domain.ExportRecord) error {
	m := mapping.ToModelExportRecord(record)

	query := `
		INSERT INTO export_history (export_id, user_id, username, kind, format, filename, row_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExportID,
		m.UserID,
		m.Username,
		m.Kind,
		m.Format,
		m.Filename,
		m.RowCount,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save export record "+m.ExportID, err)
	}
	return nil
}

// ListExportRecords returns a page of the user's exports, newest first, using a
// (created_at, export_id) keyset cursor.
func (r *PgxExportHistoryRepository) ListExportRecords(ctx context.Context, userID int64, limit int, nextToken *string) ([]domain.ExportRecord, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT export_id, user_id, username, kind, format, filename, row_count, created_at
		FROM export_history
		WHERE user_id = $1
	`
	// Ordering must be stable; export_id breaks ties between equal timestamps.
	orderByClause := `ORDER BY created_at DESC, export_id DESC`

	args := []interface{}{userID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, export_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query export history for user "+strconv.FormatInt(userID, 10), err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExportRecord])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan export history rows", err)
	}

	var next *string
	if len(modelRecords) > limit {
		modelRecords = modelRecords[:limit]
		last := modelRecords[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ExportID)
		next = &token
	}

	return mapping.ToDomainExportRecordSlice(modelRecords), next, nil
}
