package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mission77/core/internal/config"
)

const connectTimeout = 10 * time.Second

// Collections resolves the per-environment collection handles.
// Non-production deployments read and write "_dev" suffixed collections.
type Collections struct {
	Districts   *mongo.Collection
	Itineraries *mongo.Collection
}

// DB bundles the Mongo client with the application collections.
type DB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections Collections
}

// Default is the global database instance.
var Default *DB

// Connect opens a MongoDB connection and verifies it with a ping.
func Connect(cfg *config.AppConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URIValue()))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)
	instance := &DB{
		Client:   client,
		Database: db,
		Collections: Collections{
			Districts:   db.Collection(cfg.CollectionName("districts")),
			Itineraries: db.Collection(cfg.CollectionName("itineraries")),
		},
	}

	Default = instance
	return instance, nil
}

// Ping verifies the connection is still alive.
func (d *DB) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the underlying Mongo client.
func (d *DB) Disconnect(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
