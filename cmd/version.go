package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/pkg/ui"
)

// Version information - these can be set during build with ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  `Display the current version of ativos along with build information.`,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(ui.StyleTitle.Render("Ativos") + " - terminal client for the ativos service")
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Version", Version))
	fmt.Println(ui.RenderKeyValue("Commit", GitCommit))
	fmt.Println(ui.RenderKeyValue("Build Date", BuildDate))
	fmt.Println(ui.RenderKeyValue("Go", runtime.Version()))
}
