// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUser is the document shape of the users collection.
type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (u mongoUser) toModel() models.User {
	return models.User{
		ID:           u.ID.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
	}
}

// withoutPassword is the projection that keeps the hash on the server side.
var withoutPassword = bson.D{{Key: "password", Value: 0}}

// mongoUserRepository is the MongoDB-backed implementation of [UserRepository].
type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] over the users
// collection of db.
func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		users:  db.users(),
		logger: logger,
	}
}

// CreateUser inserts a new user document. The ObjectID is generated by the
// driver. A unique-index violation on email → [ErrLoginAlreadyExists].
func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	doc := mongoUser{
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.User{}, fmt.Errorf("%w: unexpected inserted id type %T", ErrScanningRow, res.InsertedID)
	}
	doc.ID = id

	return doc.toModel(), nil
}

// FindUserByEmail returns the user with the given email, password included.
func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}}, options.FindOne())
}

// FindProfileByID returns the user with the given hex ObjectID with the
// password projected out. A malformed id cannot match any document and is
// reported as [ErrNoUserWasFound].
func (r *mongoUserRepository) FindProfileByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("id", id).Msg("id is not an ObjectID")
		return models.User{}, fmt.Errorf("%w: invalid id %q", ErrNoUserWasFound, id)
	}

	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, options.FindOne().SetProjection(withoutPassword))
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.D, opts *options.FindOneOptions) (models.User, error) {
	log := logger.FromContext(ctx)

	var doc mongoUser
	err := r.users.FindOne(ctx, filter, opts).Decode(&doc)
	switch {
	case err == nil:
		return doc.toModel(), nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", "*mongoUserRepository.findOne").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
