// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-profile/internal/config"
	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const defaultMongoDatabase = "auth"

var usersCollection = models.User{}.TableName()

// MongoDB owns the process-wide MongoDB client and the database the
// repositories work in.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB and pings the primary. Both steps are
// bounded by cfg.ConnectTimeout; no retry is attempted.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	dbName, err := mongoDatabaseName(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("invalid mongodb connection string")
		return nil, fmt.Errorf("%w: %w", ErrConnectingStorage, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingStorage, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		closeAfterFailedStartup(log, BackendMongo, func() error {
			return client.Disconnect(context.WithoutCancel(ctx))
		})
		return nil, fmt.Errorf("%w: %w", ErrConnectingStorage, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", dbName).Msg("connected to database successfully")

	return &MongoDB{
		client:   client,
		database: client.Database(dbName),
		logger:   log,
	}, nil
}

// EnsureIndexes creates the unique index on users.email that backs
// [ErrLoginAlreadyExists]. It is idempotent.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})
	if err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.EnsureIndexes").Msg("error creating users index")
		return fmt.Errorf("error creating users index: %w", err)
	}

	return nil
}

// Close disconnects the client and drains its connection pool.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) users() *mongo.Collection {
	return m.database.Collection(usersCollection)
}

// mongoDatabaseName resolves the database name: explicit config first,
// then the path of the connection string, then the default.
func mongoDatabaseName(cfg config.DB) (string, error) {
	if cfg.Name != "" {
		return cfg.Name, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.DSN)
	if err != nil {
		return "", err
	}
	if cs.Database != "" {
		return cs.Database, nil
	}

	return defaultMongoDatabase, nil
}
