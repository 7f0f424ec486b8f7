package adapters

import (
	"encoding/json"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"winkits/internal/ports"
	"winkits/internal/types"
)

// ReportWriterAdapter encodes survey reports as YAML or JSON.
type ReportWriterAdapter struct{}

func NewReportWriterAdapter() ReportWriterAdapter {
	return ReportWriterAdapter{}
}

func (a ReportWriterAdapter) WriteReport(w io.Writer, report types.SurveyReport, format types.ReportFormat) error {
	switch format {
	case types.ReportFormatYAML, "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode survey report").
				WithCause(err)
		}
		return encoder.Close()
	case types.ReportFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode survey report").
				WithCause(err)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported report format: " + string(format))
	}
}

var _ ports.ReportWriterPort = ReportWriterAdapter{}
