// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ncruces/go-strftime"
)

// DefaultLRUSize is the number of hot entries Front keeps in memory
// before evicting to make room for new ones. Sized to comfortably hold a
// notebook's worth of cells; parses are independent, so there is no
// cross-entry invalidation to worry about.
const DefaultLRUSize = 256

// Front is a Store fronted by an in-process LRU, so repeated lookups of
// the same handful of hot keys (the cell a user is actively editing)
// never touch disk.
type Front struct {
	store *Store
	hot   *lru.Cache[string, *Entry]
}

// NewFront builds a Front over store with the given LRU capacity. A
// capacity of 0 selects DefaultLRUSize.
func NewFront(store *Store, size int) (*Front, error) {
	if size <= 0 {
		size = DefaultLRUSize
	}
	hot, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, err
	}
	return &Front{store: store, hot: hot}, nil
}

// Get checks the in-memory LRU first, falling back to the SQLite store
// and populating the LRU on a store hit.
func (f *Front) Get(ctx context.Context, key string) (*Entry, bool, error) {
	if f == nil {
		return nil, false, nil
	}
	if e, ok := f.hot.Get(key); ok {
		return e, true, nil
	}
	e, ok, err := f.store.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	f.hot.Add(key, e)
	return e, true, nil
}

// Put writes through to both the LRU and the SQLite store.
func (f *Front) Put(ctx context.Context, key string, entry *Entry) error {
	if f == nil {
		return nil
	}
	f.hot.Add(key, entry)
	return f.store.Put(ctx, key, entry)
}

// Close closes the underlying store. The in-memory LRU needs no explicit
// teardown.
func (f *Front) Close() error {
	if f == nil {
		return nil
	}
	return f.store.Close()
}

// InfoLine formats the store's --cache-info report line: entry count and
// a human-readable last-used timestamp.
func (f *Front) InfoLine(ctx context.Context) (string, error) {
	info, err := f.store.Info(ctx)
	if err != nil {
		return "", err
	}
	if !info.HasEntries {
		return "cache: empty (" + info.Path + ")", nil
	}
	last := strftime.Format("%Y-%m-%d %H:%M:%S", info.LastUsedAt)
	return fmt.Sprintf("cache: %s -- %d entries, last used %s", info.Path, info.EntryCount, last), nil
}
