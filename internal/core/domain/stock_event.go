package domain

import "time"

// StockEvent represents an inventory adjustment received from the warehouse.
type StockEvent struct {
	SKU       string
	Delta     int
	Reason    string
	Timestamp time.Time
	Source    string
}
