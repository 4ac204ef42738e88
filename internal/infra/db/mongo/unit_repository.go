package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainunit "rentdesk/internal/domain/unit"
)

type UnitRepository struct {
	col *mongo.Collection
}

func NewUnitRepository(db *mongo.Database) *UnitRepository {
	return &UnitRepository{col: db.Collection("units")}
}

func (r *UnitRepository) ByID(ctx context.Context, id string) (*domainunit.Unit, error) {
	var doc unitDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainunit.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *UnitRepository) List(ctx context.Context) ([]*domainunit.Unit, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainunit.Unit
	for cursor.Next(ctx) {
		var doc unitDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *UnitRepository) Save(ctx context.Context, u *domainunit.Unit) error {
	doc := unitDocument{ID: u.ID, PropertyID: u.PropertyID, Name: u.Name, Capacity: u.Capacity}
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

type unitDocument struct {
	ID         string `bson:"_id"`
	PropertyID string `bson:"property_id"`
	Name       string `bson:"name"`
	Capacity   int    `bson:"capacity"`
}

func (d unitDocument) toDomain() *domainunit.Unit {
	return &domainunit.Unit{ID: d.ID, PropertyID: d.PropertyID, Name: d.Name, Capacity: d.Capacity}
}
