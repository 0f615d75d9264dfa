package plan

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const plansCollection = "plans"

// MongoStore implements Store on a MongoDB collection.
// Plan documents are keyed by the unique "key" field; writes filter on the
// stored version so concurrent edits surface as ErrConflict instead of
// silently winning by last write.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by the "plans" collection of db and
// ensures the unique index on the plan key.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*MongoStore, error) {
	coll := db.Collection(plansCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &MongoStore{coll: coll}, nil
}

// Load returns a snapshot of all stored plans.
func (s *MongoStore) Load(ctx context.Context) (Catalog, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	var plans []Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	catalog := make(Catalog, len(plans))
	for _, p := range plans {
		catalog[p.Key] = p
	}
	return catalog, nil
}

// Get retrieves a plan by key.
func (s *MongoStore) Get(ctx context.Context, key string) (Plan, error) {
	var p Plan
	err := s.coll.FindOne(ctx, bson.M{"key": key}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Plan{}, ErrPlanNotFound
	}
	if err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Insert adds a new plan.
func (s *MongoStore) Insert(ctx context.Context, p Plan) error {
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Update replaces the stored document if its version still matches.
func (s *MongoStore) Update(ctx context.Context, p Plan) error {
	next := p.Clone()
	next.Version = p.Version + 1

	res, err := s.coll.ReplaceOne(ctx, bson.M{"key": p.Key, "version": p.Version}, next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a stale version from a missing document.
		n, err := s.coll.CountDocuments(ctx, bson.M{"key": p.Key})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrPlanNotFound
		}
		return ErrConflict
	}
	return nil
}

// Delete removes a plan by key.
func (s *MongoStore) Delete(ctx context.Context, key string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPlanNotFound
	}
	return nil
}
