package cli

import (
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"winkits/internal/app"
	"winkits/internal/types"
)

type surveyOptions struct {
	Format string
	Output string
}

func newSurveyCommand() *cobra.Command {
	opts := surveyOptions{}
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Report installed SDK versions per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSurvey(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Report format: yaml or json")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the report to a file instead of stdout")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("survey_output", cmd.Flags().Lookup("output"))
	return cmd
}

func runSurvey(cmd *cobra.Command, opts surveyOptions) error {
	service := newAppService()
	result, err := service.Survey(app.SurveyRequest{
		KitsRoot: viper.GetString("kits_root"),
	})
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	outputPath := resolveString(cmd, opts.Output, "survey_output", "output")
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create report file").
				WithCause(err)
		}
		defer file.Close()
		out = file
	}
	format := types.ReportFormat(resolveString(cmd, opts.Format, "format", "format"))
	return service.ReportWriter.WriteReport(out, result.Report, format)
}
