package entitlement

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const storesCollection = "store_entitlements"

// MongoStore implements Store on a MongoDB collection keyed by store_id.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by the "store_entitlements"
// collection of db and ensures the unique index on store_id plus the plan
// index used by CountByPlan.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*MongoStore, error) {
	coll := db.Collection(storesCollection)

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "store_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "plan", Value: 1}},
		},
	})
	if err != nil {
		return nil, err
	}

	return &MongoStore{coll: coll}, nil
}

// Get retrieves a record by store ID.
func (s *MongoStore) Get(ctx context.Context, storeID string) (StoreRecord, error) {
	var rec StoreRecord
	err := s.coll.FindOne(ctx, bson.M{"store_id": storeID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return StoreRecord{}, ErrStoreNotFound
	}
	if err != nil {
		return StoreRecord{}, err
	}
	return rec, nil
}

// Insert adds a new record.
func (s *MongoStore) Insert(ctx context.Context, rec StoreRecord) error {
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrStoreExists
		}
		return err
	}
	return nil
}

// Update replaces the stored document if its version still matches.
func (s *MongoStore) Update(ctx context.Context, rec StoreRecord) error {
	next := rec.Clone()
	next.Version = rec.Version + 1

	res, err := s.coll.ReplaceOne(ctx, bson.M{"store_id": rec.StoreID, "version": rec.Version}, next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		n, err := s.coll.CountDocuments(ctx, bson.M{"store_id": rec.StoreID})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrStoreNotFound
		}
		return ErrConflict
	}
	return nil
}

// CountByPlan returns how many records reference the given plan key.
func (s *MongoStore) CountByPlan(ctx context.Context, planKey string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"plan": planKey})
}
