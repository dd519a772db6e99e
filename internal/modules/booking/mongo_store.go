// README: Booking store backed by the MongoDB "booking" collection.
package booking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartpark/internal/infra"
	"smartpark/internal/types"
)

const collection = "booking"

type bookingDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	UserID        primitive.ObjectID `bson:"userId"`
	NumberPlate   string             `bson:"numberPlate"`
	SpotID        primitive.ObjectID `bson:"spotId"`
	ZoneID        primitive.ObjectID `bson:"zoneId"`
	StartTime     time.Time          `bson:"startTime"`
	EndTime       time.Time          `bson:"endTime"`
	BookingStatus string             `bson:"bookingStatus"`
	Amount        int64              `bson:"amount"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (d bookingDoc) toBooking() Booking {
	return Booking{
		ID:          types.ID(d.ID.Hex()),
		UserID:      types.ID(d.UserID.Hex()),
		NumberPlate: d.NumberPlate,
		SpotID:      types.ID(d.SpotID.Hex()),
		ZoneID:      types.ID(d.ZoneID.Hex()),
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Status:      Status(d.BookingStatus),
		Amount:      d.Amount,
		CreatedAt:   d.CreatedAt,
	}
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collection)}
}

func (s *MongoStore) ListBySpot(ctx context.Context, spotID types.ID, excluded []Status) ([]Booking, error) {
	oid, ok := infra.ObjectID(string(spotID))
	if !ok {
		return nil, nil
	}
	filter := bson.M{
		"spotId":        oid,
		"bookingStatus": bson.M{"$nin": statusStrings(excluded)},
	}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

func (s *MongoStore) CountInWindow(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []Status) (int64, error) {
	oid, ok := infra.ObjectID(string(zoneID))
	if !ok {
		return 0, nil
	}
	return s.coll.CountDocuments(ctx, bson.M{
		"zoneId":        oid,
		"startTime":     bson.M{"$gte": from},
		"endTime":       bson.M{"$lte": to},
		"bookingStatus": bson.M{"$in": statusStrings(statuses)},
	})
}

func (s *MongoStore) ListCreatedBetween(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []Status) ([]Booking, error) {
	oid, ok := infra.ObjectID(string(zoneID))
	if !ok {
		return nil, nil
	}
	filter := bson.M{
		"zoneId":        oid,
		"createdAt":     bson.M{"$gte": from, "$lte": to},
		"bookingStatus": bson.M{"$in": statusStrings(statuses)},
	}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (s *MongoStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Booking, error) {
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Booking, len(docs))
	for i, d := range docs {
		out[i] = d.toBooking()
	}
	return out, nil
}
