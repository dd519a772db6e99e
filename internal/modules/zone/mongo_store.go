// README: Zone store backed by the MongoDB "zone" collection.
package zone

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"smartpark/internal/infra"
	"smartpark/internal/types"
)

const collection = "zone"

type zoneDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	PricePerHour *int64             `bson:"pricePerHour,omitempty"`
	Vertices     [][]float64        `bson:"vertices"`
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collection)}
}

func (s *MongoStore) Get(ctx context.Context, id types.ID) (*Zone, error) {
	oid, ok := infra.ObjectID(string(id))
	if !ok {
		return nil, ErrNotFound
	}
	var doc zoneDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Zone{
		ID:           types.ID(doc.ID.Hex()),
		Name:         doc.Name,
		Description:  doc.Description,
		PricePerHour: doc.PricePerHour,
		Vertices:     doc.Vertices,
	}, nil
}
