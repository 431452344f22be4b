package ports

import (
	"context"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// ListPlantsFilter carries all query parameters for listing catalog entries.
type ListPlantsFilter struct {
	Category string // optional: filter by category
	Search   string // optional: partial match on name or species
	Page     int    // 1-based
	Limit    int    // max rows per page (capped at 100 by service)
}

// PlantRepository defines persistence operations for the catalog.
type PlantRepository interface {
	Create(ctx context.Context, p *domain.Plant) error
	Update(ctx context.Context, p *domain.Plant) error
	FindBySKU(ctx context.Context, sku string) (*domain.Plant, error)
	// List returns a page of plants matching filter and the total count.
	List(ctx context.Context, filter ListPlantsFilter) ([]*domain.Plant, int64, error)
	// AdjustStock atomically applies delta to the plant's stock and returns the
	// updated document. The stock never goes below zero; a delta that would do
	// so fails with domain.ErrInsufficientStock.
	AdjustStock(ctx context.Context, sku string, delta int) (*domain.Plant, error)
	// ListLowStock returns every plant whose stock is at or below its threshold.
	ListLowStock(ctx context.Context) ([]*domain.Plant, error)
}
