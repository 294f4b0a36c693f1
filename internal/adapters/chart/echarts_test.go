package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dolarame/ativos/internal/core/domain"
)

func value(v float64) *float64 { return &v }

func TestEChartsRenderer_Render(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ativos.html")

	data := domain.ChartData{
		Title: "Carteira",
		Dates: []string{"2024-01-01", "2024-01-02"},
		Series: []domain.ChartSeries{
			{Name: "PETR4", Values: []*float64{value(31), value(32.5)}},
			{Name: "VALE3", Values: []*float64{nil, value(60)}},
		},
	}

	if err := NewEChartsRenderer().Render(data, path); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}

	html := string(content)
	for _, want := range []string{"Carteira", "PETR4", "VALE3", "2024-01-02"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart HTML missing %q", want)
		}
	}
}

func TestLineData(t *testing.T) {
	items := lineData([]*float64{value(1.5), nil})
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Value != 1.5 {
		t.Errorf("items[0] = %v, want 1.5", items[0].Value)
	}
	if items[1].Value != gap {
		t.Errorf("items[1] = %v, want gap", items[1].Value)
	}
}
