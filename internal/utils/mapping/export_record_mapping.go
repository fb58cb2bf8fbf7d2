package mapping

import (
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/models"
)

// ToModelExportRecord converts a domain ExportRecord to a model ExportRecord
func ToModelExportRecord(d domain.ExportRecord) models.ExportRecord {
	return models.ExportRecord{
		ExportID:  d.ID,
		UserID:    d.UserID,
		Username:  d.Username,
		Kind:      string(d.Kind),
		Format:    string(d.Format),
		Filename:  d.Filename,
		RowCount:  d.RowCount,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainExportRecord converts a model ExportRecord to a domain ExportRecord
func ToDomainExportRecord(m models.ExportRecord) domain.ExportRecord {
	return domain.ExportRecord{
		ID:        m.ExportID,
		UserID:    m.UserID,
		Username:  m.Username,
		Kind:      domain.ExportKind(m.Kind),
		Format:    domain.ExportFormat(m.Format),
		Filename:  m.Filename,
		RowCount:  m.RowCount,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// ToDomainExportRecordSlice converts a slice of model ExportRecords to domain ExportRecords
func ToDomainExportRecordSlice(ms []models.ExportRecord) []domain.ExportRecord {
	ds := make([]domain.ExportRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExportRecord(m)
	}
	return ds
}
