// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cache_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mdhender/wlparse/internal/ast"
	"github.com/mdhender/wlparse/internal/cache"
	"github.com/mdhender/wlparse/internal/diag"
)

func TestKeyStability(t *testing.T) {
	opts := cache.KeyOptions{TabWidth: 4, Mode: "ast"}
	a := cache.Key([]byte("1 + 2"), opts)
	b := cache.Key([]byte("1 + 2"), opts)
	if a != b {
		t.Fatalf("same input/options produced different keys: %q vs %q", a, b)
	}
	c := cache.Key([]byte("1 + 3"), opts)
	if a == c {
		t.Fatalf("different input produced the same key")
	}
	d := cache.Key([]byte("1 + 2"), cache.KeyOptions{TabWidth: 8, Mode: "ast"})
	if a == d {
		t.Fatalf("different tab width produced the same key")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := cache.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	key := cache.Key([]byte("x + y"), cache.KeyOptions{TabWidth: 4, Mode: "ast"})

	if _, ok, err := store.Get(ctx, key); err != nil {
		t.Fatalf("Get (miss): %v", err)
	} else if ok {
		t.Fatalf("expected a miss before any Put")
	}

	entry := &cache.Entry{
		InputBytes: 5,
		AST:        &ast.Node{Kind: ast.KindSymbol, Name: "x"},
		NonFatal:   []diag.Issue{{Severity: diag.Remark, Message: "test"}},
	}
	if err := store.Put(ctx, key, entry); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get (hit): %v", err)
	}
	if !ok {
		t.Fatalf("expected a hit after Put")
	}
	if got.AST == nil || got.AST.Name != "x" {
		t.Fatalf("round-tripped entry lost its AST: %+v", got.AST)
	}
	if len(got.NonFatal) != 1 || got.NonFatal[0].Message != "test" {
		t.Fatalf("round-tripped entry lost its issues: %+v", got.NonFatal)
	}

	info, err := store.Info(ctx)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.EntryCount != 1 {
		t.Fatalf("expected 1 entry, got %d", info.EntryCount)
	}
}

func TestFrontHitsLRUBeforeStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := cache.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	front, err := cache.NewFront(store, 8)
	if err != nil {
		t.Fatalf("NewFront: %v", err)
	}

	ctx := context.Background()
	key := cache.Key([]byte("a"), cache.KeyOptions{Mode: "ast"})
	entry := &cache.Entry{InputBytes: 1, AST: &ast.Node{Kind: ast.KindSymbol, Name: "a"}}

	if err := front.Put(ctx, key, entry); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := front.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.AST.Name != "a" {
		t.Fatalf("unexpected AST: %+v", got.AST)
	}

	if line, err := front.InfoLine(ctx); err != nil {
		t.Fatalf("InfoLine: %v", err)
	} else if line == "" {
		t.Fatalf("expected a non-empty info line")
	}

	// With the store closed, only the in-memory LRU can still answer.
	_ = store.Close()
	if got, ok, err := front.Get(ctx, key); err != nil || !ok || got.AST.Name != "a" {
		t.Fatalf("expected the LRU to answer with the store closed: ok=%v err=%v", ok, err)
	}
}
