// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user as assigned by the store
	// (hex ObjectID for MongoDB, UUID for SQL backends).
	// It is also the "sub" claim of every token issued for the user.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, lower-cased login of the user.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table (or collection)
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the user: every field except
// the password hash.
func (u User) Profile() Profile {
	profile := Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt.UTC()
		profile.CreatedAt = &createdAt
	}

	return profile
}

// Profile is the projection of a [User] that is safe to return to callers.
// It has no field for the password hash, so no serialization path can leak it.
type Profile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
