// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/utils"
	"github.com/MKhiriev/go-auth-profile/models"
	sq "github.com/Masterminds/squirrel"
)

// usersTable is the table created by migrations/00001_create_users.sql.
var usersTable = models.User{}.TableName()

const (
	columnID           = "id"
	columnName         = "name"
	columnEmail        = "email"
	columnPasswordHash = "password_hash"
	columnCreatedAt    = "created_at"
)

// profileColumns never includes the password hash.
var (
	profileColumns = []string{columnID, columnName, columnEmail, columnCreatedAt}
	userColumns    = []string{columnID, columnName, columnEmail, columnPasswordHash, columnCreatedAt}
)

// userRepository is the SQL implementation of [UserRepository], shared by
// PostgreSQL and SQLite. Queries are built with squirrel using the
// placeholder format of the underlying driver.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateUser inserts a new row. The ID (UUIDv7) and CreatedAt are assigned
// here so the same statement works on every dialect.
//
// Error handling:
//   - unique violation on email → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()
	user.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the full user record, hash included.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	builder := r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{columnEmail: email})

	var user models.User
	err := r.queryRow(ctx, "*userRepository.FindUserByEmail", builder,
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)

	return user, err
}

// FindProfileByID retrieves the user without ever selecting password_hash.
func (r *userRepository) FindProfileByID(ctx context.Context, id string) (models.User, error) {
	builder := r.db.builder.
		Select(profileColumns...).
		From(usersTable).
		Where(sq.Eq{columnID: id})

	var user models.User
	err := r.queryRow(ctx, "*userRepository.FindProfileByID", builder,
		&user.ID, &user.Name, &user.Email, &user.CreatedAt)

	return user, err
}

func (r *userRepository) queryRow(ctx context.Context, fn string, builder sq.SelectBuilder, dest ...any) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.Limit(1).ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNoUserWasFound
	default:
		log.Err(err).Str("func", fn).Msg("error scanning user row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
