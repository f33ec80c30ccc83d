package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hrms-backend/internal/platform/config"
)

const (
	CollEmployees  = "employees"
	CollAttendance = "attendance"
)

// Connect opens the store client and verifies it with a ping. The returned
// client must be disconnected by the caller on shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("store connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("store ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}
