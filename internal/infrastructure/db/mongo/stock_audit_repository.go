package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

const collectionStockEvents = "stock_events"

// StockAuditRepository persists processed stock events for auditing.
type StockAuditRepository struct {
	col *mongo.Collection
}

func NewStockAuditRepository(db *mongo.Database) *StockAuditRepository {
	return &StockAuditRepository{col: db.Collection(collectionStockEvents)}
}

type stockEventDoc struct {
	SKU       string    `bson:"sku"`
	Delta     int       `bson:"delta"`
	Reason    string    `bson:"reason"`
	Timestamp time.Time `bson:"timestamp"`
	Source    string    `bson:"source"`
}

func (r *StockAuditRepository) InsertEvent(ctx context.Context, event *domain.StockEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, stockEventDoc{
		SKU:       event.SKU,
		Delta:     event.Delta,
		Reason:    event.Reason,
		Timestamp: event.Timestamp,
		Source:    event.Source,
	})
	return err
}
