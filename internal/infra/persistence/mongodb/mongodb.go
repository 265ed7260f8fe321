// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"dashboard/config"
	"dashboard/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the dependencies for the database handle, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the database handle. The connection is
// an explicitly constructed dependency with fx lifecycle management: opened
// here at startup, disconnected on shutdown.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), params.Config.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(shutdownCtx))
		},
	})

	params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

	return client.Database(params.Config.Mongo.Database), nil
}
