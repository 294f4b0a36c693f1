package domain

// ChartSeries is the value history of a single ativo, aligned to
// ChartData.Dates. A nil entry means no record on that date.
type ChartSeries struct {
	Name   string
	Values []*float64
}

// ChartData is the input of a chart renderer
type ChartData struct {
	Title  string
	Dates  []string
	Series []ChartSeries
}

// IsEmpty reports whether the chart has nothing to plot
func (d ChartData) IsEmpty() bool {
	return len(d.Dates) == 0 || len(d.Series) == 0
}
