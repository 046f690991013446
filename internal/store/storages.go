// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-profile/internal/config"
	"github.com/MKhiriev/go-auth-profile/internal/logger"
)

// Backend identifies the store implementation selected by the DSN scheme.
type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Storages bundles the repositories used by the service layer together with
// the handle that owns the underlying connection pool.
type Storages struct {
	UserRepository UserRepository

	closer func(ctx context.Context) error
}

// NewStorages connects to the store named by cfg.DB.DSN, prepares its schema
// (indexes for MongoDB, goose migrations for SQL) and returns the repositories
// backed by it. The connection is established once and shared by all requests.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, err := DetectBackend(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	log.Info().Str("backend", string(backend)).Msg("creating storages...")

	switch backend {
	case BackendMongo:
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureIndexes(ctx); err != nil {
			closeAfterFailedStartup(log, backend, func() error {
				return db.Close(context.WithoutCancel(ctx))
			})
			return nil, err
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(db, log),
			closer:         db.Close,
		}, nil

	case BackendPostgres, BackendSQLite:
		var db *DB
		if backend == BackendPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			closeAfterFailedStartup(log, backend, db.Close)
			return nil, err
		}
		return &Storages{
			UserRepository: NewUserRepository(db, log),
			closer: func(context.Context) error {
				return db.Close()
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedStorage, backend)
}

// Close releases the connection pool. It is safe to call on Storages
// built without a closer.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}

// closeAfterFailedStartup releases a connection opened by a startup step
// that later failed. The original startup error is the one returned, so a
// close failure is only logged.
func closeAfterFailedStartup(log *logger.Logger, backend Backend, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Error().Err(err).Str("backend", string(backend)).Msg("error closing storage after failed startup")
	}
}

// DetectBackend maps a DSN to the backend that serves it.
func DetectBackend(dsn string) (Backend, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case lower == "":
		return "", fmt.Errorf("%w: empty DSN", ErrUnsupportedStorage)
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "file:"):
		return BackendSQLite, nil
	}

	scheme, _, _ := strings.Cut(lower, "://")
	return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedStorage, scheme)
}
