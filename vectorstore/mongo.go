package vectorstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists vector records in a Mongo collection keyed by
// record id. Nearest-neighbor retrieval is done client-side by the
// query service over ListByType; the collection only has to be a
// reliable keyed store.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	return &MongoStore{col: db.Collection(collection)}
}

var _ Store = (*MongoStore)(nil)

func (s *MongoStore) Upsert(ctx context.Context, records ...Record) error {
	for _, r := range records {
		_, err := s.col.ReplaceOne(ctx,
			bson.M{"_id": r.ID},
			r,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", r.ID, err)
		}
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var r Record
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	return &r, nil
}

func (s *MongoStore) DeleteBySource(ctx context.Context, source, recordType string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{
		"metadata.source": source,
		"metadata.type":   recordType,
	})
	if err != nil {
		return fmt.Errorf("delete by source %s: %w", source, err)
	}
	return nil
}

func (s *MongoStore) ListByType(ctx context.Context, recordType string) ([]Record, error) {
	cur, err := s.col.Find(ctx, bson.M{"metadata.type": recordType})
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", recordType, err)
	}
	defer cur.Close(ctx)

	var records []Record
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s records: %w", recordType, err)
	}
	return records, nil
}
