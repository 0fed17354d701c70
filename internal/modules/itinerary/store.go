package itinerary

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mission77/core/internal/models"
)

// ErrNotFound is returned for updates and deletes against a missing id.
var ErrNotFound = errors.New("itinerary not found")

// Store is the remote itinerary collection.
type Store interface {
	Insert(ctx context.Context, it models.Itinerary) error
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Itinerary, error)
}

const storeTimeout = 10 * time.Second

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// NewID assigns a store-side document id.
func NewID() string { return uuid.New().String() }

func (s *MongoStore) Insert(ctx context.Context, it models.Itinerary) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	_, err := s.coll.InsertOne(ctx, it)
	return err
}

func (s *MongoStore) Update(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all itineraries ordered by date ascending. The date is an ISO
// string, so the sort is lexicographic.
func (s *MongoStore) List(ctx context.Context) ([]models.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Itinerary
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
