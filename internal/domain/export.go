package domain

import "fmt"

// ExportFormat selects the document type produced by the export endpoint.
type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat validates a user-supplied format string.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case ExportPDF, ExportXLSX:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q (want pdf or xlsx)", ErrValidation, s)
}

// Ext returns the file extension for the format, without a dot.
func (f ExportFormat) Ext() string {
	return string(f)
}

// ContentType returns the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExportFilename is the suggested download name for a trip's export.
func ExportFilename(tripID string, f ExportFormat) string {
	return fmt.Sprintf("trip-plan-%s.%s", tripID, f.Ext())
}
