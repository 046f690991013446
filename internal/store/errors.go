// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a single
	// user record matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedStorage is returned by [NewStorages] when the DSN scheme
	// does not name a supported backend.
	ErrUnsupportedStorage = errors.New("unsupported storage")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrConnectingStorage is returned when the initial connection or ping
	// of the store fails.
	ErrConnectingStorage = errors.New("error connecting storage")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query, statement or
	// document operation against the store fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when decoding a row or document into a
	// destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
