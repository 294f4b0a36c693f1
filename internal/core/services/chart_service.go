package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/ports"
)

// ChartService renders the value history of ativos
type ChartService struct {
	store    *AssetStore
	renderer ports.ChartRenderer
}

// NewChartService creates a new chart service
func NewChartService(store *AssetStore, renderer ports.ChartRenderer) *ChartService {
	return &ChartService{
		store:    store,
		renderer: renderer,
	}
}

// ChartRequest represents a request to render a chart
type ChartRequest struct {
	Search     string
	Title      string
	OutputPath string
}

// ChartResponse represents the rendered chart
type ChartResponse struct {
	Path   string
	Series int
	Points int
}

// Execute refreshes the store, builds the chart data from the filtered
// projection and renders it.
func (s *ChartService) Execute(ctx context.Context, req ChartRequest) (*ChartResponse, error) {
	if err := s.store.Refresh(ctx); err != nil {
		return nil, err
	}

	s.store.SetSearchTerm(req.Search)
	data := BuildChartData(s.store.Snapshot().Filtered)
	data.Title = req.Title

	if data.IsEmpty() {
		return nil, fmt.Errorf("no ativos to chart")
	}

	if err := s.renderer.Render(data, req.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return &ChartResponse{
		Path:   req.OutputPath,
		Series: len(data.Series),
		Points: len(data.Dates),
	}, nil
}

// BuildChartData groups assets by name over their dates. Dates are ordered
// chronologically when they parse; unparseable dates sort after, by text.
// When a name has several records on one date the last one wins.
func BuildChartData(assets []domain.Asset) domain.ChartData {
	dates := lo.Uniq(lo.Map(assets, func(a domain.Asset, _ int) string { return a.Date }))
	sortDates(dates)

	names := lo.Uniq(lo.Map(assets, func(a domain.Asset, _ int) string { return a.Name }))

	dateIndex := make(map[string]int, len(dates))
	for i, d := range dates {
		dateIndex[d] = i
	}

	series := make([]domain.ChartSeries, len(names))
	nameIndex := make(map[string]int, len(names))
	for i, n := range names {
		nameIndex[n] = i
		series[i] = domain.ChartSeries{Name: n, Values: make([]*float64, len(dates))}
	}

	for _, a := range assets {
		v := a.Value
		series[nameIndex[a.Name]].Values[dateIndex[a.Date]] = &v
	}

	return domain.ChartData{Dates: dates, Series: series}
}

func sortDates(dates []string) {
	parsed := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		if t, err := dateparse.ParseAny(d); err == nil {
			parsed[d] = t
		}
	}

	sort.SliceStable(dates, func(i, j int) bool {
		ti, okI := parsed[dates[i]]
		tj, okJ := parsed[dates[j]]
		switch {
		case okI && okJ:
			if ti.Equal(tj) {
				return dates[i] < dates[j]
			}
			return ti.Before(tj)
		case okI != okJ:
			return okI
		default:
			return dates[i] < dates[j]
		}
	})
}
