package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/dolarame/ativos/internal/core/domain"
)

func TestTable_Render(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "NOME", Width: 5},
		{Header: "VALOR", Align: "right"},
		{Header: "DATA"},
	})
	table.AddRow([]string{"PETR4", "32.50 BRL", "2024-01-01"})
	table.AddRow([]string{"VALE3", "60.00 BRL", "2024-01-02"})
	table.Footer = []string{"2 ativos", "92.50 BRL", ""}

	out := table.Render()

	for _, want := range []string{"NOME", "PETR4", "VALE3", "32.50 BRL", "2 ativos", "92.50 BRL"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 6 {
		t.Errorf("expected 6 lines (header, separator, 2 rows, separator, footer), got %d", got)
	}
}

func TestTable_Empty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("table without columns should render empty, got %q", got)
	}
}

func TestPadString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		align    string
		expected string
	}{
		{"left", "ab", 4, "left", "ab  "},
		{"right", "ab", 4, "right", "  ab"},
		{"center", "ab", 6, "center", "  ab  "},
		{"multibyte", "ção", 5, "left", "ção  "},
		{"too long", "abcdef", 3, "left", "abcdef"},
		{"styled", "\x1b[1mab\x1b[0m", 4, "right", "  \x1b[1mab\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padString(tt.input, tt.width, tt.align); got != tt.expected {
				t.Errorf("padString(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.align, got, tt.expected)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	out := FormatValue(domain.Asset{Name: "PETR4", Value: 32.5, Date: "2024-01-01"})
	if !strings.Contains(out, "32.50 BRL") {
		t.Errorf("FormatValue rendered %q", out)
	}
}

func TestTable_StyledCellsAlign(t *testing.T) {
	table := NewTable([]TableColumn{{Header: "Valor", Width: 10, Align: "right"}})
	table.AddRow([]string{StyleBold.Render("1.00")})
	table.AddRow([]string{"10.00"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	widths := map[int]bool{}
	for _, line := range lines {
		widths[lipgloss.Width(line)] = true
	}
	if len(widths) != 1 {
		t.Errorf("Expected every line to have the same visible width, got %v", widths)
	}
}

func TestFormatNotification(t *testing.T) {
	ok := FormatNotification(domain.NewSuccess("Ativo adicionado com sucesso!"))
	if !strings.Contains(ok, IconSuccess) || !strings.Contains(ok, "Ativo adicionado com sucesso!") {
		t.Errorf("success notification rendered as %q", ok)
	}

	bad := FormatNotification(domain.NewError("Data inválida."))
	if !strings.Contains(bad, IconError) || !strings.Contains(bad, "Data inválida.") {
		t.Errorf("error notification rendered as %q", bad)
	}
}

func TestHighlightJSON(t *testing.T) {
	in := `[{"nome":"PETR4","valor":32.5}]`
	out := HighlightJSON(in)
	if !strings.Contains(out, "PETR4") {
		t.Errorf("highlighted output lost content: %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("expected ANSI escape sequences in highlighted output")
	}
}
