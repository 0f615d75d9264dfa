package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const notificationsCollection = "notifications"

// MongoStore implements Store on a MongoDB collection keyed by the
// notification UUID.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by the "notifications" collection.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(notificationsCollection)}
}

// List returns all notifications, newest first.
func (s *MongoStore) List(ctx context.Context) ([]Notification, error) {
	cursor, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var out []Notification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get retrieves a notification by ID.
func (s *MongoStore) Get(ctx context.Context, id uuid.UUID) (Notification, error) {
	var n Notification
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Notification{}, ErrNotificationNotFound
	}
	if err != nil {
		return Notification{}, err
	}
	return n, nil
}

// Create inserts a new notification.
func (s *MongoStore) Create(ctx context.Context, n Notification) error {
	_, err := s.coll.InsertOne(ctx, n)
	return err
}

// Update replaces an existing notification.
func (s *MongoStore) Update(ctx context.Context, n Notification) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": n.ID}, n)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// Delete removes a notification.
func (s *MongoStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
