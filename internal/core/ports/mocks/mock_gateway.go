package mocks

import (
	"context"
	"sync"

	"github.com/dolarame/ativos/internal/core/domain"
)

// MockGateway is an in-memory implementation of the AssetGateway interface for testing
type MockGateway struct {
	mu     sync.RWMutex
	assets []domain.Asset

	// ListErr, when set, is returned by List instead of the stored assets
	ListErr error
	// CreateErr, when set, is returned by Create and nothing is stored
	CreateErr error

	ListCalls   int
	CreateCalls []domain.Asset
}

// NewMockGateway creates a new mock gateway seeded with assets
func NewMockGateway(assets ...domain.Asset) *MockGateway {
	return &MockGateway{
		assets: append([]domain.Asset{}, assets...),
	}
}

// List returns a copy of the stored assets
func (m *MockGateway) List(ctx context.Context) ([]domain.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Asset, len(m.assets))
	copy(out, m.assets)
	return out, nil
}

// Create records the call and appends the asset
func (m *MockGateway) Create(ctx context.Context, asset domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls = append(m.CreateCalls, asset)
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.assets = append(m.assets, asset)
	return nil
}

// SetListErr changes the List error under the lock
func (m *MockGateway) SetListErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListErr = err
}

// Created returns the assets passed to Create so far
func (m *MockGateway) Created() []domain.Asset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Asset, len(m.CreateCalls))
	copy(out, m.CreateCalls)
	return out
}

// Lists returns how many times List was called
func (m *MockGateway) Lists() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ListCalls
}

// MockChartRenderer records render calls instead of writing files
type MockChartRenderer struct {
	mu    sync.Mutex
	Err   error
	Calls int
	Data  domain.ChartData
	Path  string
}

// NewMockChartRenderer creates a new mock chart renderer
func NewMockChartRenderer() *MockChartRenderer {
	return &MockChartRenderer{}
}

// Render records its arguments
func (m *MockChartRenderer) Render(data domain.ChartData, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.Data = data
	m.Path = path
	return m.Err
}
