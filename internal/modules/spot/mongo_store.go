// README: Spot store backed by the MongoDB "spot" collection.
package spot

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"smartpark/internal/infra"
	"smartpark/internal/types"
)

const collection = "spot"

type spotDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	ZoneID   primitive.ObjectID `bson:"zoneId"`
	Status   string             `bson:"status"`
	Vertices [][]float64        `bson:"vertices"`
}

func (d spotDoc) toSpot() Spot {
	return Spot{
		ID:       types.ID(d.ID.Hex()),
		Name:     d.Name,
		ZoneID:   types.ID(d.ZoneID.Hex()),
		Status:   Status(d.Status),
		Vertices: d.Vertices,
	}
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collection)}
}

func (s *MongoStore) Get(ctx context.Context, id types.ID) (*Spot, error) {
	oid, ok := infra.ObjectID(string(id))
	if !ok {
		return nil, ErrNotFound
	}
	var doc spotDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	sp := doc.toSpot()
	return &sp, nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]Spot, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []spotDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Spot, len(docs))
	for i, d := range docs {
		out[i] = d.toSpot()
	}
	return out, nil
}

func (s *MongoStore) CountByZone(ctx context.Context, zoneID types.ID) (int64, error) {
	oid, ok := infra.ObjectID(string(zoneID))
	if !ok {
		return 0, nil
	}
	return s.coll.CountDocuments(ctx, bson.M{"zoneId": oid})
}

func (s *MongoStore) SetStatus(ctx context.Context, id types.ID, status Status) error {
	oid, ok := infra.ObjectID(string(id))
	if !ok {
		return ErrNotFound
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) SetDerivedStatus(ctx context.Context, id types.ID, status Status, preserveMaintenance bool) (bool, error) {
	oid, ok := infra.ObjectID(string(id))
	if !ok {
		return false, nil
	}
	filter := bson.M{"_id": oid}
	if preserveMaintenance {
		filter["status"] = bson.M{"$ne": string(StatusUnderMaintenance)}
	}
	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
