package report

import (
	"fmt"
	"io"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// Emitter encodes a workbook into one file format.
type Emitter interface {
	Format() domain.ExportFormat
	ContentType() string
	Extension() string
	Encode(w io.Writer, wb Workbook) error
}

// EmitterFor returns the emitter of format.
func EmitterFor(format domain.ExportFormat) (Emitter, error) {
	switch format {
	case domain.FormatXLSX, "":
		return XLSXEmitter{}, nil
	case domain.FormatCSV:
		return CSVEmitter{}, nil
	}
	return nil, fmt.Errorf("%w: no emitter for format %q", apperrors.ErrValidation, format)
}
