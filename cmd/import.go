package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dolarame/ativos/internal/core/services"
	"github.com/dolarame/ativos/pkg/ui"
)

var (
	importWatch bool
	importQuiet bool
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Register ativos from a YAML or JSON file",
	Long: `Register every ativo listed in FILE.

The file holds a list of entries with nome, valor and data, either at
the top level or under an "ativos" key. Every entry is validated on its
own; invalid or rejected entries are reported and do not stop the rest.

With --watch the file is imported again each time it is saved.

Example file:
  ativos:
    - nome: PETR4
      valor: 32.50
      data: 2024-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "Import again whenever the file changes")
	importCmd.Flags().BoolVarP(&importQuiet, "quiet", "q", false, "Only print the summary")
}

func runImport(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	if !importWatch {
		resp, err := importFile(cmd.Context(), path)
		if err != nil {
			return err
		}
		if resp.Failed > 0 {
			return fmt.Errorf("%d entries failed", resp.Failed)
		}
		return nil
	}

	return watchImportFile(cmd.Context(), path)
}

func importFile(ctx context.Context, path string) (*services.ImportResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	candidates, err := services.ParseImportFile(data)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		fmt.Println(ui.FormatWarning("Nenhum ativo no arquivo."))
		return &services.ImportResponse{}, nil
	}

	resp, err := importService.Execute(ctx, services.ImportRequest{Candidates: candidates})
	if err != nil {
		return nil, err
	}

	if !importQuiet {
		printImportResults(resp)
	}

	summary := resp.Summary()
	if resp.Failed > 0 {
		fmt.Println(ui.FormatWarning(summary))
	} else {
		fmt.Println(ui.FormatSuccess(summary))
	}

	return resp, nil
}

func printImportResults(resp *services.ImportResponse) {
	for _, r := range resp.Results {
		label := fmt.Sprintf("#%d %s", r.Index+1, r.Candidate.Name)
		if r.OK() {
			fmt.Println(ui.FormatSuccess(label))
			continue
		}
		fmt.Println(ui.FormatError(label + ": " + r.Err.Error()))
	}
	fmt.Println()
}

func watchImportFile(ctx context.Context, path string) error {
	// Create file watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	fmt.Println(ui.FormatRocket("Watching " + path))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	if _, err := importFile(ctx, path); err != nil {
		fmt.Println(ui.FormatError(err.Error()))
	}

	trigger := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			// Reset debounce timer
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(appConfig.WatchDebounce(), func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			fmt.Println(ui.FormatInfo("Arquivo alterado, importando..."))
			if _, err := importFile(ctx, path); err != nil {
				fmt.Println(ui.FormatError(err.Error()))
			}
			fmt.Println()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watcher stopped"))
			return nil
		}
	}
}
