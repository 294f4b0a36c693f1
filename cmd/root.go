package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dolarame/ativos/internal/adapters/chart"
	"github.com/dolarame/ativos/internal/adapters/httpapi"
	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/services"
	"github.com/dolarame/ativos/pkg/appdir"
	"github.com/dolarame/ativos/pkg/config"
	"github.com/dolarame/ativos/pkg/logging"
	"github.com/dolarame/ativos/pkg/ui"
)

var (
	// Global paths and settings
	appDirs   *appdir.Dirs
	appConfig *config.Config
	logger    *zap.Logger

	// Services
	assetStore    *services.AssetStore
	listService   *services.ListService
	importService *services.ImportService
	chartService  *services.ChartService

	// Gateway
	gateway *httpapi.Client

	// Global flags
	verbose bool
	baseURL string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ativos",
	Short: "Ativos - register and browse financial assets",
	Long: ui.StyleTitle.Render("Ativos") + " - terminal client for the ativos service\n\n" +
		"Register ativos (name, value, date) with local validation and browse\n" +
		"the registered list with a live name filter.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDefaultAction,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !alreadyReported(err) {
			fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		}
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging, mirrored to stderr outside the dashboard")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Address of the ativos service (overrides config)")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for commands that need nothing
	if cmd.Name() == "version" {
		return nil
	}

	dirs, err := appdir.New()
	if err != nil {
		return fmt.Errorf("failed to resolve directories: %w", err)
	}
	appDirs = dirs

	cfg, err := config.Load(appDirs.ConfigPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)

	if err := appDirs.Initialize(); err != nil {
		return err
	}

	// Initialize logger
	logFile := appConfig.LogFile
	if logFile == "" {
		logFile = appDirs.LogPath()
	}
	logger, err = logging.New(logging.Options{
		Level:   appConfig.LogLevel,
		File:    logFile,
		Verbose: verbose,
		Stderr:  verbose && !isInteractive(cmd),
	})
	if err != nil {
		return err
	}

	// Initialize gateway
	gateway = httpapi.NewClient(appConfig.BaseURL, appConfig.RequestTimeout)

	// Initialize services
	assetStore = services.NewAssetStore(gateway, logger)
	listService = services.NewListService(assetStore)
	importService = services.NewImportService(gateway, assetStore, appConfig.MaxWorkers, logger)
	chartService = services.NewChartService(assetStore, chart.NewEChartsRenderer())

	// The dashboard renders notifications itself; everything else prints them
	if !isInteractive(cmd) {
		assetStore.OnNotify(func(n domain.Notification) {
			fmt.Fprintln(os.Stderr, ui.FormatNotification(n))
		})
	}

	logger.Debug("initialized",
		zap.String("command", cmd.Name()),
		zap.String("base_url", appConfig.BaseURL))

	return nil
}

func runDefaultAction(cmd *cobra.Command, args []string) error {
	if appConfig.DefaultAction == "list" {
		return runList(cmd, args)
	}
	return runDashboard(cmd, args)
}

// isInteractive reports whether cmd takes over the terminal
func isInteractive(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return appConfig == nil || appConfig.DefaultAction == "dashboard"
	}
	return cmd.Name() == "dashboard"
}

// alreadyReported reports whether err was shown to the user as a store
// notification
func alreadyReported(err error) bool {
	return domain.IsValidationError(err) ||
		domain.IsRequestError(err) ||
		errors.Is(err, context.Canceled)
}
