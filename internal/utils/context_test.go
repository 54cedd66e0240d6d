// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-tasks-api/models"
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
	ctx := WithIdentity(context.Background(), models.Identity{Subject: "42", Email: "a@b.c"})

	identity, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if identity.Subject != "42" || identity.Email != "a@b.c" {
		t.Errorf("unexpected identity %+v", identity)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	identity, ok := GetIdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if identity.Subject != "" {
		t.Errorf("expected empty identity, got %+v", identity)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetIdentityFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), models.Identity{Subject: "1"})

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
