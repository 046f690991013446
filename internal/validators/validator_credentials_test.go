// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCredentials() models.Credentials {
	return models.Credentials{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret1",
	}
}

func TestNewCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCredentials()))
	})

	t.Run("pointer", func(t *testing.T) {
		c := validCredentials()
		require.NoError(t, v.Validate(ctx, &c))
	})

	t.Run("nil pointer", func(t *testing.T) {
		var c *models.Credentials
		require.ErrorIs(t, v.Validate(ctx, c), ErrUnsupportedType)
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validCredentials(), "age"), ErrUnknownField)
	})
}

func TestValidate_Register(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(c *models.Credentials)
		wantErr error
	}{
		{name: "valid", mutate: func(c *models.Credentials) {}},
		{name: "empty name", mutate: func(c *models.Credentials) { c.Name = "" }, wantErr: ErrEmptyName},
		{name: "blank name", mutate: func(c *models.Credentials) { c.Name = "   " }, wantErr: ErrEmptyName},
		{name: "email without at", mutate: func(c *models.Credentials) { c.Email = "ann.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email without dot after at", mutate: func(c *models.Credentials) { c.Email = "ann.x@example" }, wantErr: ErrInvalidEmail},
		{name: "email with empty local part", mutate: func(c *models.Credentials) { c.Email = "@example.com" }, wantErr: ErrInvalidEmail},
		{name: "email ending with dot", mutate: func(c *models.Credentials) { c.Email = "ann@example." }, wantErr: ErrInvalidEmail},
		{name: "email with inner space", mutate: func(c *models.Credentials) { c.Email = "an n@example.com" }, wantErr: ErrInvalidEmail},
		{name: "email with padding", mutate: func(c *models.Credentials) { c.Email = "  Ann@Example.com " }},
		{name: "empty password", mutate: func(c *models.Credentials) { c.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "short password", mutate: func(c *models.Credentials) { c.Password = "12345" }, wantErr: ErrShortPassword},
		{name: "six char password", mutate: func(c *models.Credentials) { c.Password = "123456" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredentials()
			tt.mutate(&c)

			err := v.Validate(ctx, c, RegisterFields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Login(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "ann@example.com", Password: "x"}, LoginFields...))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "x"}, LoginFields...), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "ann@example.com"}, LoginFields...), ErrEmptyPassword)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
}
