package ports

import (
	"context"

	"github.com/dolarame/ativos/internal/core/domain"
)

// AssetGateway defines the port for the remote ativos service
type AssetGateway interface {
	// List returns every ativo known to the service, in service order
	List(ctx context.Context) ([]domain.Asset, error)

	// Create registers a new ativo
	Create(ctx context.Context, asset domain.Asset) error
}

// ChartRenderer defines the port for rendering asset charts
type ChartRenderer interface {
	// Render writes the chart to path
	Render(data domain.ChartData, path string) error
}
