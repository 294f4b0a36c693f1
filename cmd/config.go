package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/pkg/config"
	"github.com/dolarame/ativos/pkg/ui"
)

var configPathOnly bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the ativos configuration file",
	Long: `Open the configuration file in your editor, creating it with the
default settings first when it does not exist.

Every setting can also be overridden with an ATIVOS_* environment variable.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configPathOnly, "path", false, "Print the config file path and exit")
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := appDirs.ConfigPath

	if configPathOnly {
		fmt.Println(path)
		return nil
	}

	// Ensure it exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Created default config: " + path))
	}

	fmt.Println(ui.FormatInfo("Opening config: " + path))
	if err := OpenInEditor(path); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	// Report problems now rather than on the next run
	if _, err := config.Load(path); err != nil {
		fmt.Println(ui.FormatWarning(err.Error()))
	}

	return nil
}
