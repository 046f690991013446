// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/utils"
	"github.com/MKhiriev/go-auth-profile/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(db, "pgx", sq.Dollar, l),
		logger: l,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	insertUserQuery    = regexp.QuoteMeta("INSERT INTO users (id,name,email,password_hash,created_at) VALUES ($1,$2,$3,$4,$5)")
	selectByEmailQuery = regexp.QuoteMeta("SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1 LIMIT 1")
	selectProfileQuery = regexp.QuoteMeta("SELECT id, name, email, created_at FROM users WHERE id = $1 LIMIT 1")
)

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"}

	mock.ExpectExec(insertUserQuery).
		WithArgs(sqlmock.AnyArg(), "Ann", "ann@example.com", "hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, "ann@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(insertUserQuery).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(insertUserQuery).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow("u-1", "Ann", "ann@example.com", "hash", now)

	mock.ExpectQuery(selectByEmailQuery).
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)

	assert.Equal(t, "u-1", found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, now, found.CreatedAt)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectByEmailQuery).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectByEmailQuery).
		WithArgs("ann@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByEmail_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u-1") // wrong shape → scan error

	mock.ExpectQuery(selectByEmailQuery).
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	_, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	assert.Error(t, err)
}

func TestFindProfileByID_NeverSelectsHash(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "created_at"}).
		AddRow("u-1", "Ann", "ann@example.com", now)

	mock.ExpectQuery(selectProfileQuery).
		WithArgs("u-1").
		WillReturnRows(rows)

	found, err := repo.FindProfileByID(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, "u-1", found.ID)
	assert.Equal(t, "Ann", found.Name)
	assert.Empty(t, found.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindProfileByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectProfileQuery).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}))

	_, err := repo.FindProfileByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_SQLitePlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &userRepository{
		db:     newDB(db, "sqlite3", sq.Question, logger.Nop()),
		logger: logger.Nop(),
		ids:    utils.NewUUIDGenerator(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, created_at FROM users WHERE id = ? LIMIT 1")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow("u-1", "Ann", "ann@example.com", time.Now()))

	_, err = repo.FindProfileByID(context.Background(), "u-1")
	assert.NoError(t, err)
}
