package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rentdesk/internal/domain/daterange"
	domainpricing "rentdesk/internal/domain/pricing"
)

type PriceRepository struct {
	col *mongo.Collection
}

func NewPriceRepository(db *mongo.Database) *PriceRepository {
	return &PriceRepository{col: db.Collection("price_assignments")}
}

// ListByUnit returns assignments ordered by creation time ascending, so the
// most recently created one wins day overlaps in the index build.
func (r *PriceRepository) ListByUnit(ctx context.Context, unitID string) ([]*domainpricing.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"unit_id": unitID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainpricing.Assignment
	for cursor.Next(ctx) {
		var doc priceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *PriceRepository) Insert(ctx context.Context, a *domainpricing.Assignment) error {
	_, err := r.col.InsertOne(ctx, newPriceDocument(a))
	return err
}

func (r *PriceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domainpricing.ErrNotFound
	}
	return nil
}

type priceDocument struct {
	ID        string  `bson:"_id"`
	UnitID    string  `bson:"unit_id"`
	DateRange string  `bson:"date_range"`
	Price     float64 `bson:"price"`
	CreatedAt int64   `bson:"created_at"`
}

func newPriceDocument(a *domainpricing.Assignment) priceDocument {
	return priceDocument{
		ID:        a.ID,
		UnitID:    a.UnitID,
		DateRange: a.Range.WireLiteral(),
		Price:     a.Price,
		CreatedAt: a.CreatedAt.UnixMilli(),
	}
}

func (d priceDocument) toDomain() *domainpricing.Assignment {
	iv, rangeErr := daterange.Parse(d.DateRange)
	if rangeErr != nil {
		iv = daterange.Interval{}
	}
	return &domainpricing.Assignment{
		ID:        d.ID,
		UnitID:    d.UnitID,
		Range:     iv,
		Price:     d.Price,
		CreatedAt: time.UnixMilli(d.CreatedAt).UTC(),
		RangeErr:  rangeErr,
	}
}
