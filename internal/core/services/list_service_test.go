package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/ports/mocks"
)

func sampleAssets() []domain.Asset {
	return []domain.Asset{
		{Name: "PETR4", Value: 32.5, Date: "2024-01-03"},
		{Name: "VALE3", Value: 60, Date: "2024-01-01"},
		{Name: "ITUB4", Value: 25.1, Date: "2024-01-02"},
		{Name: "PETR3", Value: 30, Date: "2024-01-04"},
	}
}

func TestFilterByName(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term matches all", "", []string{"PETR4", "VALE3", "ITUB4", "PETR3"}},
		{"lowercase term", "petr", []string{"PETR4", "PETR3"}},
		{"uppercase term", "VALE", []string{"VALE3"}},
		{"digit", "4", []string{"PETR4", "ITUB4"}},
		{"no match", "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByName(sampleAssets(), tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d assets, want %d", len(got), len(tt.want))
			}
			for i, a := range got {
				if a.Name != tt.want[i] {
					t.Errorf("got[%d] = %s, want %s", i, a.Name, tt.want[i])
				}
			}
		})
	}
}

func TestListService_Execute(t *testing.T) {
	tests := []struct {
		name          string
		request       ListRequest
		setupMocks    func(*mocks.MockGateway)
		expectedNames []string
		expectedSum   string
		expectError   bool
	}{
		{
			name:          "service order",
			request:       ListRequest{},
			expectedNames: []string{"PETR4", "VALE3", "ITUB4", "PETR3"},
			expectedSum:   "147.60",
		},
		{
			name:          "search",
			request:       ListRequest{Search: "petr"},
			expectedNames: []string{"PETR4", "PETR3"},
			expectedSum:   "62.50",
		},
		{
			name:          "sort by name",
			request:       ListRequest{SortBy: "name"},
			expectedNames: []string{"ITUB4", "PETR3", "PETR4", "VALE3"},
			expectedSum:   "147.60",
		},
		{
			name:          "sort by value reversed",
			request:       ListRequest{SortBy: "value", Reverse: true},
			expectedNames: []string{"VALE3", "PETR4", "PETR3", "ITUB4"},
			expectedSum:   "147.60",
		},
		{
			name:          "sort by date",
			request:       ListRequest{SortBy: "date"},
			expectedNames: []string{"VALE3", "ITUB4", "PETR4", "PETR3"},
			expectedSum:   "147.60",
		},
		{
			name:          "reverse service order",
			request:       ListRequest{Reverse: true},
			expectedNames: []string{"PETR3", "ITUB4", "VALE3", "PETR4"},
			expectedSum:   "147.60",
		},
		{
			name:    "fetch failure",
			request: ListRequest{},
			setupMocks: func(m *mocks.MockGateway) {
				m.SetListErr(errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := mocks.NewMockGateway(sampleAssets()...)
			if tt.setupMocks != nil {
				tt.setupMocks(gw)
			}
			svc := NewListService(NewAssetStore(gw, nil))

			resp, err := svc.Execute(context.Background(), tt.request)

			if tt.expectError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resp.Total != len(tt.expectedNames) {
				t.Fatalf("expected %d assets, got %d", len(tt.expectedNames), resp.Total)
			}
			for i, a := range resp.Assets {
				if a.Name != tt.expectedNames[i] {
					t.Errorf("assets[%d] = %s, want %s", i, a.Name, tt.expectedNames[i])
				}
			}
			if got := resp.Sum.StringFixed(2); got != tt.expectedSum {
				t.Errorf("sum = %s, want %s", got, tt.expectedSum)
			}
		})
	}
}

func TestIsValidSort(t *testing.T) {
	for _, s := range []string{"", "name", "value", "date"} {
		if !IsValidSort(s) {
			t.Errorf("IsValidSort(%q) = false", s)
		}
	}
	if IsValidSort("size") {
		t.Error("IsValidSort(\"size\") = true")
	}
}
