package cmd

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/services"
	"github.com/dolarame/ativos/pkg/ui"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick [query]",
	Short: "Fuzzy-find an ativo and copy it to the clipboard",
	Long: `Open a fuzzy finder over the registered ativos and copy the chosen
one as a tab-separated line of name, value and date.

The optional query pre-filters the list by name before the finder opens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	req := services.ListRequest{}
	if len(args) > 0 {
		req.Search = args[0]
	}

	resp, err := listService.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("Nenhum ativo encontrado."))
		return nil
	}

	idx, err := fuzzyfinder.Find(
		resp.Assets,
		func(i int) string {
			return resp.Assets[i].Name + " " + resp.Assets[i].Date
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return assetPreview(resp.Assets[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return fmt.Errorf("finder failed: %w", err)
	}

	line := resp.Assets[idx].ClipboardLine()
	if err := clipboard.WriteAll(line); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	fmt.Println(ui.FormatSuccess("Copiado: " + line))
	return nil
}

func assetPreview(a domain.Asset) string {
	return fmt.Sprintf("Nome:  %s\nValor: %s\nData:  %s", a.Name, a.DisplayValue(), a.Date)
}
