package domain

import (
	"errors"
	"time"
)

var ErrPlantNotFound = errors.New("plant not found")
var ErrDuplicatePlant = errors.New("plant already exists")
var ErrInsufficientStock = errors.New("insufficient stock")

// Plant is a catalog entry with its current inventory state.
type Plant struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	SKU               string    `json:"sku" bson:"sku"`
	Name              string    `json:"name" bson:"name"`
	Species           string    `json:"species" bson:"species"`
	Category          string    `json:"category" bson:"category"`
	Price             float64   `json:"price" bson:"price"`
	Stock             int       `json:"stock" bson:"stock"`
	LowStockThreshold int       `json:"low_stock_threshold" bson:"low_stock_threshold"`
	CareNotes         string    `json:"care_notes,omitempty" bson:"care_notes,omitempty"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// LowStock reports whether the plant's stock has fallen to or below its
// threshold.
func (p *Plant) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
