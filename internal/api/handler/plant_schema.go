package handler

import (
	"time"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createPlantRequest struct {
	SKU               string  `json:"sku"                 validate:"required"`
	Name              string  `json:"name"                validate:"required"`
	Species           string  `json:"species"             validate:"required"`
	Category          string  `json:"category"            validate:"required"`
	Price             float64 `json:"price"               validate:"required,gt=0"`
	Stock             int     `json:"stock"               validate:"gte=0"`
	LowStockThreshold int     `json:"low_stock_threshold" validate:"gte=0"`
	CareNotes         string  `json:"care_notes"`
}

type updatePlantRequest struct {
	Name              string  `json:"name"`
	Species           string  `json:"species"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"               validate:"omitempty,gt=0"`
	LowStockThreshold int     `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

type adjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type careNotesRequest struct {
	CareNotes string `json:"care_notes" validate:"required"`
}

// plantResponse is the transport view of a catalog entry. Kept separate from
// the domain type so the JSON contract is not coupled to internal changes.
type plantResponse struct {
	SKU               string    `json:"sku"`
	Name              string    `json:"name"`
	Species           string    `json:"species"`
	Category          string    `json:"category"`
	Price             float64   `json:"price"`
	Stock             int       `json:"stock"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LowStock          bool      `json:"low_stock"`
	CareNotes         string    `json:"care_notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listPlantsResponse struct {
	Data       []plantResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toPlantResponse(p *domain.Plant) plantResponse {
	return plantResponse{
		SKU:               p.SKU,
		Name:              p.Name,
		Species:           p.Species,
		Category:          p.Category,
		Price:             p.Price,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		LowStock:          p.LowStock(),
		CareNotes:         p.CareNotes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
