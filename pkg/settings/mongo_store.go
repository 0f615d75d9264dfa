package settings

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const settingsCollection = "store_settings"

// MongoStore implements Store on a MongoDB collection keyed by store_id.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by the "store_settings" collection
// of db and ensures the unique index on store_id.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*MongoStore, error) {
	coll := db.Collection(settingsCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "store_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &MongoStore{coll: coll}, nil
}

// Get retrieves settings by store ID.
func (s *MongoStore) Get(ctx context.Context, storeID string) (StoreSettings, error) {
	var doc StoreSettings
	err := s.coll.FindOne(ctx, bson.M{"store_id": storeID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return StoreSettings{}, ErrSettingsNotFound
	}
	if err != nil {
		return StoreSettings{}, err
	}
	return doc, nil
}

// Save creates or replaces the settings document.
func (s *MongoStore) Save(ctx context.Context, doc StoreSettings) error {
	doc.UpdatedAt = time.Now().UTC()
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"store_id": doc.StoreID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// List returns settings for all stores.
func (s *MongoStore) List(ctx context.Context) ([]StoreSettings, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var out []StoreSettings
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
