package services

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/dolarame/ativos/internal/core/domain"
)

// FilterByName returns the assets whose name contains term, ignoring case.
// An empty term matches everything. The input order is preserved.
func FilterByName(assets []domain.Asset, term string) []domain.Asset {
	return lo.Filter(assets, func(a domain.Asset, _ int) bool {
		return a.MatchesName(term)
	})
}

// ListService produces the list view for batch commands
type ListService struct {
	store *AssetStore
}

// NewListService creates a new list service
func NewListService(store *AssetStore) *ListService {
	return &ListService{
		store: store,
	}
}

// ListRequest represents a request to list ativos
type ListRequest struct {
	Search  string // Case-insensitive name filter (optional)
	SortBy  string // "", "name", "value", "date" ("" keeps service order)
	Reverse bool   // Reverse sort order
}

// ListResponse represents the response from listing ativos
type ListResponse struct {
	Assets []domain.Asset
	Total  int
	Sum    decimal.Decimal
}

// Execute refreshes the store and returns the filtered projection
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	if err := s.store.Refresh(ctx); err != nil {
		return nil, err
	}

	s.store.SetSearchTerm(req.Search)
	filtered := s.store.Snapshot().Filtered

	filtered = sortAssets(filtered, req.SortBy, req.Reverse)

	return &ListResponse{
		Assets: filtered,
		Total:  len(filtered),
		Sum:    domain.TotalValue(filtered),
	}, nil
}

func sortAssets(assets []domain.Asset, sortBy string, reverse bool) []domain.Asset {
	if sortBy == "" {
		if reverse {
			slices.Reverse(assets)
		}
		return assets
	}

	sort.SliceStable(assets, func(i, j int) bool {
		if reverse {
			i, j = j, i
		}
		switch sortBy {
		case "value":
			return assets[i].Value < assets[j].Value
		case "date":
			return assets[i].Date < assets[j].Date
		default: // "name"
			return strings.ToLower(assets[i].Name) < strings.ToLower(assets[j].Name)
		}
	})
	return assets
}

// IsValidSort reports whether sortBy is accepted by ListRequest
func IsValidSort(sortBy string) bool {
	return lo.Contains([]string{"", "name", "value", "date"}, sortBy)
}
