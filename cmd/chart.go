package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/internal/core/services"
	"github.com/dolarame/ativos/pkg/ui"
)

var (
	chartSearch string
	chartOutput string
	chartOpen   bool
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the value history of ativos as an HTML chart",
	Long: `Render one line per ativo name, plotting the registered values over
their dates, into a standalone HTML file.

Examples:
  ativos chart
  ativos chart --search petr --open
  ativos chart -o /tmp/ativos.html`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartSearch, "search", "s", "", "Only chart ativos whose name matches")
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "Output HTML file")
	chartCmd.Flags().BoolVar(&chartOpen, "open", false, "Open the chart after rendering")
}

func runChart(cmd *cobra.Command, args []string) error {
	output := chartOutput
	if output == "" {
		output = appConfig.ChartOutput
	}
	if output == "" {
		output = appDirs.ChartPath("ativos.html")
	}

	title := "Ativos"
	if chartSearch != "" {
		title = fmt.Sprintf("Ativos (%s)", strings.ToUpper(chartSearch))
	}

	resp, err := chartService.Execute(cmd.Context(), services.ChartRequest{
		Search:     chartSearch,
		Title:      title,
		OutputPath: output,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s Chart written (%d series, %d dates)",
		ui.IconChart, resp.Series, resp.Points)))
	fmt.Println(ui.FormatMuted("  " + resp.Path))

	if chartOpen {
		if err := OpenFile(resp.Path, appConfig.ChartViewer); err != nil {
			return err
		}
	}

	return nil
}
