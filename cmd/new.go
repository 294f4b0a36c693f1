package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/pkg/ui"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:     "new NAME VALUE DATE",
	Aliases: []string{"add"},
	Short:   "Register a new ativo",
	Long: `Validate and register a new ativo.

The name is uppercased and must be four letters followed by a digit.
The value must be a positive number and the date a valid calendar date.
Nothing is sent when validation fails.

Examples:
  ativos new PETR4 32.50 2024-01-01
  ativos new vale3 60 2024-02-15`,
	Args: cobra.ExactArgs(3),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	candidate := domain.Candidate{
		Name:  args[0],
		Value: args[1],
		Date:  args[2],
	}

	// Outcome notifications are printed by the store listener
	if err := assetStore.Create(cmd.Context(), candidate); err != nil {
		return err
	}

	asset := candidate.ToAsset()
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Nome", asset.Name))
	fmt.Println(ui.RenderKeyValue("Valor", asset.DisplayValue()))
	fmt.Println(ui.RenderKeyValue("Data", asset.Date))

	return nil
}
