// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/pizza-specials/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	want := models.Principal{Subject: "alice", Scopes: []string{"read"}}
	ctx := ContextWithPrincipal(context.Background(), want)

	got, ok := GetPrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.Subject != "alice" || !got.HasScope("read") {
		t.Errorf("unexpected principal %+v", got)
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	got, ok := GetPrincipalFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got.Subject != "" || got.Scopes != nil {
		t.Errorf("expected zero principal, got %+v", got)
	}
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "alice")

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetPrincipalFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Principal{Subject: "bob"})

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
