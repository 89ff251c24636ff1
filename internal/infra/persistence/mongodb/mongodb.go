// Package mongodb contains the concrete implementation of the persistence
// layer using the official Mongo driver.
package mongodb

import (
	"context"
	"log/slog"

	"bizdir/config"
	"bizdir/internal/domain/lifecycle"
	"bizdir/internal/errors"
	"bizdir/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Mongo database handle. The client's connection pool is the
// only long-lived resource; its lifecycle is owned by the Fx hooks, not by
// first-use side effects.
func New(params Params) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetTimeout(params.Config.Mongo.Timeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Mongo client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping Mongo")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to Mongo",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// ensureIndexes declares the unique indexes the uniqueness contract relies
// on. Registration never pre-reads for duplicates; the index is the backstop
// and the only check.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(model.CollectionUsers).Indexes().CreateMany(ctx, userIndexes()); err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	if _, err := db.Collection(model.CollectionBusinesses).Indexes().CreateMany(ctx, businessIndexes()); err != nil {
		return errors.Wrap(err, "failed to create business indexes")
	}

	if _, err := db.Collection(model.CollectionRequestHistory).Indexes().CreateMany(ctx, historyIndexes()); err != nil {
		return errors.Wrap(err, "failed to create history indexes")
	}

	return nil
}

func userIndexes() []mongo.IndexModel {
	unique := options.Index().SetUnique(true)

	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "subject", Value: 1}}, Options: unique},
	}
}

func businessIndexes() []mongo.IndexModel {
	// The businessName index is partial: the membership-renewal upsert may
	// create a listing stub without a name, and Mongo indexes a missing
	// field as null. A non-partial unique index would let the first stub
	// occupy the null slot and reject every later stub with a
	// duplicate-key error.
	partialUniqueName := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{"businessName": bson.M{"$exists": true}})

	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "businessName", Value: 1}}, Options: partialUniqueName},
		{Keys: bson.D{{Key: "ownerSubject", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
}

func historyIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}
}

// isDuplicateKey reports whether the error is a unique index violation.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
