package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"widia-api/config"
)

const (
	CollectionStatusChecks = "status_checks"
	CollectionContactForms = "contact_forms"
)

// Mongo owns the client for the lifetime of the process. It is created in
// main and handed to the repositories.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB, verifies the connection and ensures indexes.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	uri := cfg.URI
	if uri == "" {
		// local docker-compose default
		uri = "mongodb://localhost:27017"
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = "widia"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, fmt.Errorf("db: ping: %w", err)
	}

	m := &Mongo{client: cl, db: cl.Database(dbName)}
	if err := ensureIndexes(ctx, m.db); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, fmt.Errorf("db: ensure indexes: %w", err)
	}
	return m, nil
}

func (m *Mongo) Client() *mongo.Client     { return m.client }
func (m *Mongo) Database() *mongo.Database { return m.db }

// Ping runs the ping command against the configured database.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// status_checks: unique id, timestamp desc for the bounded listing
	{
		_, err := d.Collection(CollectionStatusChecks).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetName("uniq_id").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_timestamp_desc"),
			},
		})
		if err != nil {
			return err
		}
	}

	// contact_forms: unique id, timestamp desc
	{
		_, err := d.Collection(CollectionContactForms).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetName("uniq_id").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_timestamp_desc"),
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
