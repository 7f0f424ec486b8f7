package ports

import (
	"io"

	"winkits/internal/types"
)

// ReportWriterPort encodes a survey report for human or machine
// consumption.
type ReportWriterPort interface {
	WriteReport(w io.Writer, report types.SurveyReport, format types.ReportFormat) error
}
