package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/services"
	"github.com/dolarame/ativos/pkg/ui"
)

var (
	listSearch  string
	listSortBy  string
	listReverse bool
	listJSON    bool
	listNoColor bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List registered ativos",
	Aliases: []string{"ls"},
	Long: `Fetch the ativos from the service and print them as a table.

Values are shown with two decimals. The search term keeps only the ativos
whose name contains it, ignoring case.

Examples:
  ativos list
  ativos list --search petr
  ativos list --sort value --reverse
  ativos list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter ativos by name")
	listCmd.Flags().StringVar(&listSortBy, "sort", "", "Sort by field (name, value, date); default keeps service order")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "Reverse sort order")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the list as JSON")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable JSON highlighting")
}

func runList(cmd *cobra.Command, args []string) error {
	if !services.IsValidSort(listSortBy) {
		return fmt.Errorf("invalid sort field %q (use name, value or date)", listSortBy)
	}

	req := services.ListRequest{
		Search:  listSearch,
		SortBy:  listSortBy,
		Reverse: listReverse,
	}

	resp, err := listService.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	if listJSON {
		return printAssetsJSON(resp.Assets)
	}

	// Handle empty results
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("Nenhum ativo encontrado."))
		if listSearch == "" {
			fmt.Println(ui.FormatInfo("Register one with: ativos new PETR4 32.50 2024-01-01"))
		}
		return nil
	}

	// Print header
	if listSearch != "" {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Ativos (busca: %s)", listSearch)))
	} else {
		fmt.Println(ui.FormatTitle("Ativos"))
	}
	fmt.Println()

	fmt.Print(renderAssetTable(resp).Render())
	fmt.Println()

	return nil
}

func renderAssetTable(resp *services.ListResponse) *ui.Table {
	table := ui.NewTable([]ui.TableColumn{
		{Header: "Nome", Width: domain.NameLength, Align: "left"},
		{Header: "Valor", Width: 14, Align: "right"},
		{Header: "Data", Width: 12, Align: "left"},
	})

	for _, a := range resp.Assets {
		table.AddRow([]string{
			a.Name,
			ui.FormatValue(a),
			truncate(a.Date, 30),
		})
	}

	table.Footer = []string{
		fmt.Sprintf("%d ativo(s)", resp.Total),
		resp.Sum.StringFixed(2) + " " + domain.Currency,
		"",
	}

	return table
}

func printAssetsJSON(assets []domain.Asset) error {
	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ativos: %w", err)
	}

	out := string(data)
	if !listNoColor {
		out = ui.HighlightJSON(out)
	}
	fmt.Println(out)

	return nil
}
