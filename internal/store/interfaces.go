// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-auth-profile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
// Implementations exist for MongoDB and for SQL databases (PostgreSQL, SQLite).
type UserRepository interface {
	// CreateUser persists a new user and returns it with the store-assigned
	// ID and CreatedAt. A duplicate email yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the full user record, password hash included.
	// It is used by login only. A missing user yields [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindProfileByID returns the user without the password hash: the
	// secret column/field is never read from the store. A missing user, or
	// an id that is not valid for the backend, yields [ErrNoUserWasFound].
	FindProfileByID(ctx context.Context, id string) (models.User, error)
}
