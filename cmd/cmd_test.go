package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/ports/mocks"
	"github.com/dolarame/ativos/internal/core/services"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"dashboard", "list", "new", "import", "pick", "chart", "config", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Fatalf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "ativos" {
		t.Errorf("Expected root command Use to be 'ativos', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestServiceInitialization verifies services can be initialized with mocks
func TestServiceInitialization(t *testing.T) {
	gw := mocks.NewMockGateway()
	store := services.NewAssetStore(gw, nil)

	if services.NewListService(store) == nil {
		t.Error("ListService is nil")
	}
	if services.NewImportService(gw, store, 2, nil) == nil {
		t.Error("ImportService is nil")
	}
	if services.NewChartService(store, mocks.NewMockChartRenderer()) == nil {
		t.Error("ChartService is nil")
	}
}

// TestFlagsExist verifies important flags are registered
func TestFlagsExist(t *testing.T) {
	tests := []struct {
		command  string
		flagName string
	}{
		{"list", "search"},
		{"list", "sort"},
		{"list", "reverse"},
		{"list", "json"},
		{"import", "watch"},
		{"chart", "output"},
		{"chart", "open"},
		{"config", "path"},
	}

	for _, tt := range tests {
		t.Run(tt.command+"_"+tt.flagName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.command})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", tt.command, err)
			}
			if cmd.Flags().Lookup(tt.flagName) == nil {
				t.Errorf("Flag '--%s' not found on '%s'", tt.flagName, tt.command)
			}
		})
	}

	for _, name := range []string{"verbose", "base-url"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Persistent flag '--%s' not found", name)
		}
	}
}

func TestNewRequiresThreeArgs(t *testing.T) {
	if err := newCmd.Args(newCmd, []string{"PETR4", "10"}); err == nil {
		t.Error("Expected an error with two arguments")
	}
	if err := newCmd.Args(newCmd, []string{"PETR4", "10", "2024-01-01"}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestIsInteractive(t *testing.T) {
	parent := &cobra.Command{Use: "ativos"}
	dash := &cobra.Command{Use: "dashboard"}
	list := &cobra.Command{Use: "list"}
	parent.AddCommand(dash, list)

	if !isInteractive(dash) {
		t.Error("dashboard should be interactive")
	}
	if isInteractive(list) {
		t.Error("list should not be interactive")
	}
	if !isInteractive(parent) {
		t.Error("root defaults to the dashboard")
	}
}

func TestAlreadyReported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", &domain.ValidationError{Rule: domain.RuleNameLength}, true},
		{"request", &domain.RequestError{Op: "list", Err: errors.New("boom")}, true},
		{"wrapped request", fmt.Errorf("ctx: %w", &domain.RequestError{Op: "create"}), true},
		{"cancelled", context.Canceled, true},
		{"plain", errors.New("invalid sort field"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alreadyReported(tt.err); got != tt.want {
				t.Errorf("alreadyReported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRenderAssetTable(t *testing.T) {
	resp := &services.ListResponse{
		Assets: []domain.Asset{
			{Name: "PETR4", Value: 32.5, Date: "2024-01-01"},
			{Name: "VALE3", Value: 60, Date: "2024-02-15"},
		},
		Total: 2,
		Sum:   decimal.RequireFromString("92.5"),
	}

	out := renderAssetTable(resp).Render()
	for _, want := range []string{"PETR4", "32.50 BRL", "60.00 BRL", "2 ativo(s)", "92.50 BRL"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"2024-01-01", 30, "2024-01-01"},
		{"abcdefghij", 8, "abcde..."},
		{"ação-ação", 6, "açã..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
