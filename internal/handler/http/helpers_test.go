// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-profile/internal/config"
	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/mock"
	"github.com/MKhiriev/go-auth-profile/internal/service"
	"github.com/MKhiriev/go-auth-profile/internal/store"
	"github.com/MKhiriev/go-auth-profile/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "handler-test-sign-key"
	testIssuer  = "go-auth-profile-test"
)

type mockedServices struct {
	auth    *mock.MockAuthService
	profile *mock.MockProfileService
	appInfo *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are all gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockedServices{
		auth:    mock.NewMockAuthService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		ProfileService: m.profile,
		AppInfoService: m.appInfo,
	}, testServerConfig(), logger.Nop())

	return h, m
}

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:        ":0",
		CORSAllowedOrigins: []string{"*"},
	}
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
		PasswordCost:  4,
		Version:       "1.0.0-test",
	}
}

// newRealHandler builds a Handler over the real services and an in-memory
// user repository.
func newRealHandler(t *testing.T) (*Handler, *memoryUserRepository) {
	t.Helper()
	repo := newMemoryUserRepository()

	services, err := service.NewServices(&store.Storages{UserRepository: repo}, &config.StructuredConfig{
		App:    testAppConfig(),
		Server: testServerConfig(),
	}, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, testServerConfig(), logger.Nop()), repo
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func credentialsBody(t *testing.T, c models.Credentials) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decodeMessage(t *testing.T, body string) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal([]byte(body), &msg), "body: %s", body)
	return msg.Message
}

// memoryUserRepository is a concurrency-safe in-memory store.UserRepository.
type memoryUserRepository struct {
	mu      sync.Mutex
	byID    map[string]models.User
	byEmail map[string]string

	failWith error
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (m *memoryUserRepository) put(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user.ID
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return models.User{}, m.failWith
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return models.User{}, store.ErrLoginAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user.ID

	return user, nil
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return models.User{}, m.failWith
	}
	id, ok := m.byEmail[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return m.byID[id], nil
}

func (m *memoryUserRepository) FindProfileByID(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return models.User{}, m.failWith
	}
	user, ok := m.byID[id]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	user.PasswordHash = ""
	return user, nil
}
