package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

const collectionPlants = "plants"

type PlantRepository struct {
	col *mongo.Collection
}

func NewPlantRepository(db *mongo.Database) *PlantRepository {
	return &PlantRepository{col: db.Collection(collectionPlants)}
}

// Create inserts a new plant document.
func (r *PlantRepository) Create(ctx context.Context, p *domain.Plant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// String _id so the document decodes back into the domain type directly.
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicatePlant
		}
		return err
	}
	return nil
}

// Update replaces the mutable fields of the plant identified by its SKU.
func (r *PlantRepository) Update(ctx context.Context, p *domain.Plant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"sku": p.SKU}, bson.M{"$set": bson.M{
		"name":                p.Name,
		"species":             p.Species,
		"category":            p.Category,
		"price":               p.Price,
		"low_stock_threshold": p.LowStockThreshold,
		"care_notes":          p.CareNotes,
		"updated_at":          p.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlantNotFound
	}
	return nil
}

func (r *PlantRepository) FindBySKU(ctx context.Context, sku string) (*domain.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Plant
	err := r.col.FindOne(ctx, bson.M{"sku": sku}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlantNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns a page of plants matching filter and the total count.
func (r *PlantRepository) List(ctx context.Context, filter ports.ListPlantsFilter) ([]*domain.Plant, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"species": regex},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var plants []*domain.Plant
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, 0, err
	}
	return plants, total, nil
}

// AdjustStock atomically applies delta to the plant's stock. The filter
// includes a floor guard for negative deltas so stock never goes below zero;
// a guarded miss is disambiguated by re-reading the document.
func (r *PlantRepository) AdjustStock(ctx context.Context, sku string, delta int) (*domain.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"sku": sku}
	if delta < 0 {
		query["stock"] = bson.M{"$gte": -delta}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	var p domain.Plant
	err := r.col.FindOneAndUpdate(ctx, query, update, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either the SKU does not exist or the floor guard rejected the delta.
			if _, findErr := r.FindBySKU(ctx, sku); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, err
	}
	return &p, nil
}

// ListLowStock returns every plant whose stock is at or below its threshold.
func (r *PlantRepository) ListLowStock(ctx context.Context) ([]*domain.Plant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"$expr": bson.M{"$lte": bson.A{"$stock", "$low_stock_threshold"}}}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "stock", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plants []*domain.Plant
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

// EnsureIndexes creates necessary indexes on the plants collection.
func (r *PlantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
