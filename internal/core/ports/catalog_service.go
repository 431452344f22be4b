package ports

import (
	"context"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// CreatePlantInput carries all data needed to add a catalog entry.
type CreatePlantInput struct {
	SKU               string
	Name              string
	Species           string
	Category          string
	Price             float64
	Stock             int
	LowStockThreshold int
	CareNotes         string
}

// UpdatePlantInput carries the mutable catalog fields. Zero values leave the
// stored field untouched.
type UpdatePlantInput struct {
	Name              string
	Species           string
	Category          string
	Price             float64
	LowStockThreshold int
}

// ListPlantsInput carries all parameters for the list endpoint.
type ListPlantsInput struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ListPlantsResult is returned by ListPlants.
type ListPlantsResult struct {
	Items      []*domain.Plant
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CatalogService defines use-case operations on the plant catalog and its
// inventory.
type CatalogService interface {
	CreatePlant(ctx context.Context, input CreatePlantInput) (*domain.Plant, error)
	UpdatePlant(ctx context.Context, sku string, input UpdatePlantInput) (*domain.Plant, error)
	GetPlant(ctx context.Context, sku string) (*domain.Plant, error)
	ListPlants(ctx context.Context, input ListPlantsInput) (*ListPlantsResult, error)
	AdjustStock(ctx context.Context, sku string, delta int) (*domain.Plant, error)
	ListLowStock(ctx context.Context) ([]*domain.Plant, error)
	UpdateCareNotes(ctx context.Context, sku, notes string) (*domain.Plant, error)
}
