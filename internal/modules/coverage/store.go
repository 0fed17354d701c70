package coverage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mission77/core/internal/models"
)

// fieldOp is the tagged variant for optional document fields in an update:
// leave the field alone, set it to a value, or delete it from the document.
type fieldOp int

const (
	fieldKeep fieldOp = iota
	fieldSet
	fieldClear
)

// Field carries one optional-field mutation.
type Field[T any] struct {
	op    fieldOp
	value T
}

func Keep[T any]() Field[T]   { return Field[T]{op: fieldKeep} }
func Set[T any](v T) Field[T] { return Field[T]{op: fieldSet, value: v} }
func Clear[T any]() Field[T]  { return Field[T]{op: fieldClear} }

func (f Field[T]) IsSet() bool   { return f.op == fieldSet }
func (f Field[T]) IsClear() bool { return f.op == fieldClear }
func (f Field[T]) Value() T      { return f.value }

// StatusUpdate is one coverage mutation. Identity fields are written on every
// update so that the document is fully materialized on first toggle.
type StatusUpdate struct {
	Name        string
	Province    string
	Coordinates [2]float64
	Covered     bool
	DateVisited Field[string]
	Highlights  Field[[]string]
}

// Store is the remote district-status collection.
type Store interface {
	LoadAll(ctx context.Context) ([]models.District, error)
	UpsertStatus(ctx context.Context, id string, upd StatusUpdate) error
}

const storeTimeout = 10 * time.Second

// MongoStore persists district status documents keyed by district id.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) LoadAll(ctx context.Context) ([]models.District, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.District
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *MongoStore) UpsertStatus(ctx context.Context, id string, upd StatusUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	set := bson.M{
		"name":        upd.Name,
		"province":    upd.Province,
		"coordinates": upd.Coordinates,
		"covered":     upd.Covered,
		"updatedAt":   time.Now(),
	}
	unset := bson.M{}

	if upd.DateVisited.IsSet() {
		set["dateVisited"] = upd.DateVisited.Value()
	} else if upd.DateVisited.IsClear() {
		unset["dateVisited"] = ""
	}
	if upd.Highlights.IsSet() {
		set["highlights"] = upd.Highlights.Value()
	} else if upd.Highlights.IsClear() {
		unset["highlights"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	_, err := s.coll.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))
	return err
}
