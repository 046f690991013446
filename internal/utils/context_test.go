// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-profile/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Identity{SubjectID: "u1"})

	identity, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if identity.SubjectID != "u1" {
		t.Errorf("expected subject u1, got %s", identity.SubjectID)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for missing identity")
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "u1")

	_, ok := GetIdentityFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}

func TestGetIdentityFromContext_EmptySubject(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Identity{})

	_, ok := GetIdentityFromContext(ctx)
	if ok {
		t.Error("expected ok=false for empty subject")
	}
}
