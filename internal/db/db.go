package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RoomsCollection     = "rooms"
	SchedulesCollection = "schedules"
)

func Connect(ctx context.Context, uri, name string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client.Database(name), nil
}

// EnsureIndexes creates the unique indexes that back the service-level
// duplicate checks. The check-then-insert sequence in the services is not
// atomic, so these indexes are the authoritative enforcement of the
// uniqueness invariants; the services only turn violations into typed errors.
func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	// rooms: unique room number
	if _, err := d.Collection(RoomsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "roomNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	// schedules: one booking per room per day
	if _, err := d.Collection(SchedulesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "roomId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return nil
}
