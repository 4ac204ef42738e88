package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rentdesk/internal/domain/daterange"
	domainreservation "rentdesk/internal/domain/reservation"
)

var ErrEmptyBatch = errors.New("mongo: fulfillment batch is empty")

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection("reservations")}
}

// ListByUnit returns a unit's reservations ordered by creation time. A row
// with an unparseable date_range literal is returned with a zero interval so
// the index builder can skip and warn instead of the whole fetch failing.
func (r *ReservationRepository) ListByUnit(ctx context.Context, unitID string) ([]*domainreservation.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"unit_id": unitID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domainreservation.Reservation
	for cursor.Next(ctx) {
		var doc reservationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *ReservationRepository) ByID(ctx context.Context, id string) (*domainreservation.Reservation, error) {
	var doc reservationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainreservation.ErrNotFound
		}
		return nil, err
	}
	// A single-record fetch does not tolerate a corrupt interval.
	if _, err := daterange.Parse(doc.DateRange); err != nil {
		return nil, fmt.Errorf("mongo: reservation %s: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (r *ReservationRepository) Insert(ctx context.Context, res *domainreservation.Reservation) error {
	_, err := r.col.InsertOne(ctx, newReservationDocument(res))
	return err
}

func (r *ReservationRepository) Update(ctx context.Context, res *domainreservation.Reservation) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": res.ID}, newReservationDocument(res))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domainreservation.ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domainreservation.ErrNotFound
	}
	return nil
}

// MarkFulfilled flips the fulfilled flag for every listed reservation in one
// write. The caller treats a failure as if nothing was flipped.
func (r *ReservationRepository) MarkFulfilled(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrEmptyBatch
	}
	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"fulfilled": true}}
	_, err := r.col.UpdateMany(ctx, filter, update)
	return err
}

type reservationDocument struct {
	ID                string  `bson:"_id"`
	UnitID            string  `bson:"unit_id"`
	GuestFirstName    string  `bson:"guest_first_name"`
	GuestLastName     string  `bson:"guest_last_name"`
	GuestCount        int     `bson:"guest_count"`
	GuestCountry      string  `bson:"guest_country"`
	DateRange         string  `bson:"date_range"`
	TotalPrice        float64 `bson:"total_price"`
	Type              string  `bson:"type"`
	Fulfilled         bool    `bson:"fulfilled"`
	PrepaymentPercent float64 `bson:"prepayment_percent"`
	PrepaymentPaid    bool    `bson:"prepayment_paid"`
	Note              string  `bson:"note"`
	CreatedAt         int64   `bson:"created_at"`
}

func newReservationDocument(res *domainreservation.Reservation) reservationDocument {
	return reservationDocument{
		ID:                res.ID,
		UnitID:            res.UnitID,
		GuestFirstName:    res.Guest.FirstName,
		GuestLastName:     res.Guest.LastName,
		GuestCount:        res.Guest.GuestCount,
		GuestCountry:      res.Guest.Country,
		DateRange:         res.Range.WireLiteral(),
		TotalPrice:        res.TotalPrice,
		Type:              string(res.Type),
		Fulfilled:         res.Fulfilled,
		PrepaymentPercent: res.PrepaymentPercent,
		PrepaymentPaid:    res.PrepaymentPaid,
		Note:              res.Note,
		CreatedAt:         res.CreatedAt.UnixMilli(),
	}
}

func (d reservationDocument) toDomain() *domainreservation.Reservation {
	iv, rangeErr := daterange.Parse(d.DateRange)
	if rangeErr != nil {
		iv = daterange.Interval{}
	}
	return &domainreservation.Reservation{
		ID:     d.ID,
		UnitID: d.UnitID,
		Guest: domainreservation.Guest{
			FirstName:  d.GuestFirstName,
			LastName:   d.GuestLastName,
			GuestCount: d.GuestCount,
			Country:    d.GuestCountry,
		},
		Range:             iv,
		TotalPrice:        d.TotalPrice,
		Type:              domainreservation.Type(d.Type),
		Fulfilled:         d.Fulfilled,
		PrepaymentPercent: d.PrepaymentPercent,
		PrepaymentPaid:    d.PrepaymentPaid,
		Note:              d.Note,
		CreatedAt:         time.UnixMilli(d.CreatedAt).UTC(),
		RangeErr:          rangeErr,
	}
}
