package ports

import (
	"context"
	"time"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

// StockEventInput is the DTO passed from the transport layer to StockEventService.
type StockEventInput struct {
	SKU       string
	Delta     int
	Reason    string
	Timestamp time.Time
	Source    string
}

// StockEventService processes incoming inventory adjustment events.
type StockEventService interface {
	Process(ctx context.Context, event StockEventInput) error
}

// StockAuditRepository persists processed stock events to the audit collection.
type StockAuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.StockEvent) error
}
