package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

const maxPageLimit = 100

type CatalogService struct {
	repo   ports.PlantRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.PlantRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) CreatePlant(ctx context.Context, input ports.CreatePlantInput) (*domain.Plant, error) {
	now := time.Now().UTC()
	plant := &domain.Plant{
		SKU:               input.SKU,
		Name:              input.Name,
		Species:           input.Species,
		Category:          input.Category,
		Price:             input.Price,
		Stock:             input.Stock,
		LowStockThreshold: input.LowStockThreshold,
		CareNotes:         input.CareNotes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, plant); err != nil {
		s.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to create plant")
		return nil, err
	}

	s.logger.Info().Str("sku", plant.SKU).Str("name", plant.Name).Msg("plant created")
	return plant, nil
}

func (s *CatalogService) UpdatePlant(ctx context.Context, sku string, input ports.UpdatePlantInput) (*domain.Plant, error) {
	plant, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		plant.Name = input.Name
	}
	if input.Species != "" {
		plant.Species = input.Species
	}
	if input.Category != "" {
		plant.Category = input.Category
	}
	if input.Price > 0 {
		plant.Price = input.Price
	}
	if input.LowStockThreshold > 0 {
		plant.LowStockThreshold = input.LowStockThreshold
	}
	plant.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *CatalogService) GetPlant(ctx context.Context, sku string) (*domain.Plant, error) {
	return s.repo.FindBySKU(ctx, sku)
}

func (s *CatalogService) ListPlants(ctx context.Context, input ports.ListPlantsInput) (*ports.ListPlantsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListPlantsFilter{
		Category: input.Category,
		Search:   input.Search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListPlantsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// AdjustStock applies a delta to the plant's stock. The repository guarantees
// the stock never goes negative.
func (s *CatalogService) AdjustStock(ctx context.Context, sku string, delta int) (*domain.Plant, error) {
	plant, err := s.repo.AdjustStock(ctx, sku, delta)
	if err != nil {
		return nil, err
	}

	if plant.LowStock() {
		s.logger.Warn().Str("sku", sku).Int("stock", plant.Stock).Msg("plant stock at or below threshold")
	}
	return plant, nil
}

func (s *CatalogService) ListLowStock(ctx context.Context) ([]*domain.Plant, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *CatalogService) UpdateCareNotes(ctx context.Context, sku, notes string) (*domain.Plant, error) {
	plant, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	plant.CareNotes = notes
	plant.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
