// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-profile/internal/config"
	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/mock"
	"github.com/MKhiriev/go-auth-profile/internal/store"
	"github.com/MKhiriev/go-auth-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		svc := NewProfileService(repo, logger.Nop())

		repo.EXPECT().FindProfileByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Name: "Ann"}, nil)

		profile, err := svc.GetProfile(context.Background(), models.Identity{SubjectID: "u1"})
		require.NoError(t, err)

		body, err := json.Marshal(profile)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"u1","name":"Ann"}`, string(body))
	})

	t.Run("created at is exposed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		svc := NewProfileService(repo, logger.Nop())

		createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().FindProfileByID(gomock.Any(), "u1").
			Return(models.User{ID: "u1", Name: "Ann", Email: "ann@example.com", PasswordHash: "leak?", CreatedAt: createdAt}, nil)

		profile, err := svc.GetProfile(context.Background(), models.Identity{SubjectID: "u1"})
		require.NoError(t, err)

		body, err := json.Marshal(profile)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "leak?")
		assert.Contains(t, string(body), `"createdAt":"2025-05-01T10:00:00Z"`)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		svc := NewProfileService(repo, logger.Nop())

		repo.EXPECT().FindProfileByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.GetProfile(context.Background(), models.Identity{SubjectID: "ghost"})
		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		svc := NewProfileService(repo, logger.Nop())

		repo.EXPECT().FindProfileByID(gomock.Any(), "u1").Return(models.User{}, store.ErrExecutingQuery)

		_, err := svc.GetProfile(context.Background(), models.Identity{SubjectID: "u1"})
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{UserRepository: mock.NewMockUserRepository(ctrl)}

	cfg := &config.StructuredConfig{App: testAppConfig()}
	cfg.App.Version = "1.2.3"

	services, err := NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ProfileService)
	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(context.Background()))

	cfg.App.Version = ""
	_, err = NewServices(storages, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
