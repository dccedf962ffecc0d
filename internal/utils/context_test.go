// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if OperatorCtxKey.String() != "operator" {
		t.Errorf("expected key name 'operator', got %q", OperatorCtxKey.String())
	}
}

func TestGetOperatorFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "deployer")

	operator, ok := GetOperatorFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if operator != "deployer" {
		t.Errorf("expected 'deployer', got %q", operator)
	}
}

func TestGetOperatorFromContext_Missing(t *testing.T) {
	if _, ok := GetOperatorFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetOperatorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, 42)

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetOperatorFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "")

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Error("expected ok=false for empty operator")
	}
}

func TestGetOperatorFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "deployer")

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Error("expected ok=false when stored under another key")
	}
}
