package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

func TestCatalogService_CreateAndGet(t *testing.T) {
	repo := newStubPlantRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.CreatePlant(context.Background(), ports.CreatePlantInput{
		SKU:               "MONS-01",
		Name:              "Monstera Deliciosa",
		Species:           "Monstera deliciosa",
		Category:          "indoor",
		Price:             29.99,
		Stock:             15,
		LowStockThreshold: 3,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}

	got, err := svc.GetPlant(context.Background(), "MONS-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Monstera Deliciosa" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestCatalogService_CreateDuplicateSKU(t *testing.T) {
	repo := newStubPlantRepo(&domain.Plant{SKU: "MONS-01"})
	svc := NewCatalogService(repo, zerolog.Nop())

	_, err := svc.CreatePlant(context.Background(), ports.CreatePlantInput{SKU: "MONS-01", Name: "dup"})
	if !errors.Is(err, domain.ErrDuplicatePlant) {
		t.Fatalf("expected ErrDuplicatePlant, got %v", err)
	}
}

func TestCatalogService_UpdateKeepsUnsetFields(t *testing.T) {
	repo := newStubPlantRepo(&domain.Plant{
		SKU: "MONS-01", Name: "Monstera", Category: "indoor", Price: 29.99, LowStockThreshold: 3,
	})
	svc := NewCatalogService(repo, zerolog.Nop())

	updated, err := svc.UpdatePlant(context.Background(), "MONS-01", ports.UpdatePlantInput{Price: 34.99})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 34.99 {
		t.Errorf("price = %v", updated.Price)
	}
	if updated.Name != "Monstera" || updated.Category != "indoor" {
		t.Errorf("unset fields were overwritten: %+v", updated)
	}
}

func TestCatalogService_AdjustStockUnderflow(t *testing.T) {
	repo := newStubPlantRepo(&domain.Plant{SKU: "MONS-01", Stock: 2})
	svc := NewCatalogService(repo, zerolog.Nop())

	_, err := svc.AdjustStock(context.Background(), "MONS-01", -3)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCatalogService_ListClampsPagination(t *testing.T) {
	repo := newStubPlantRepo(&domain.Plant{SKU: "MONS-01"})
	svc := NewCatalogService(repo, zerolog.Nop())

	result, err := svc.ListPlants(context.Background(), ports.ListPlantsInput{Page: -4, Limit: 9999})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Page != 1 {
		t.Errorf("page = %d, want 1", result.Page)
	}
	if result.Limit != maxPageLimit {
		t.Errorf("limit = %d, want %d", result.Limit, maxPageLimit)
	}
}

func TestCatalogService_UpdateCareNotes(t *testing.T) {
	repo := newStubPlantRepo(&domain.Plant{SKU: "MONS-01", CareNotes: "old"})
	svc := NewCatalogService(repo, zerolog.Nop())

	updated, err := svc.UpdateCareNotes(context.Background(), "MONS-01", "water weekly, indirect light")
	if err != nil {
		t.Fatalf("update care notes: %v", err)
	}
	if updated.CareNotes != "water weekly, indirect light" {
		t.Errorf("care notes = %q", updated.CareNotes)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 0, 0},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
