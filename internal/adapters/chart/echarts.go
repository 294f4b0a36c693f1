package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dolarame/ativos/internal/core/domain"
)

// gap is how ECharts expects a missing point
const gap = "-"

// EChartsRenderer writes ativo history as a standalone HTML line chart
type EChartsRenderer struct {
	width  string
	height string
}

// NewEChartsRenderer creates a new renderer
func NewEChartsRenderer() *EChartsRenderer {
	return &EChartsRenderer{
		width:  "1200px",
		height: "600px",
	}
}

// Render writes the chart for data to path, creating parent directories
func (r *EChartsRenderer) Render(data domain.ChartData, path string) error {
	line := r.build(data)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	return nil
}

func (r *EChartsRenderer) build(data domain.ChartData) *charts.Line {
	title := data.Title
	if title == "" {
		title = "Ativos"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     r.width,
			Height:    r.height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("Valores em %s", domain.Currency),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: domain.Currency}),
	)

	line.SetXAxis(data.Dates)
	for _, s := range data.Series {
		line.AddSeries(s.Name, lineData(s.Values))
	}

	return line
}

func lineData(values []*float64) []opts.LineData {
	items := make([]opts.LineData, len(values))
	for i, v := range values {
		if v == nil {
			items[i] = opts.LineData{Value: gap}
			continue
		}
		items[i] = opts.LineData{Value: *v}
	}
	return items
}
