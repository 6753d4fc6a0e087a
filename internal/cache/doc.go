// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cache implements an optional, content-addressed cache of parse
// results, sitting in front of the root wlparse package for callers that
// reparse the same handful of inputs repeatedly (a notebook server
// re-linting a cell on every keystroke, a batch linter walking a large
// corpus of .wl files where many are unchanged between runs). It is not
// part of the parsing core itself: the core is a pure function of
// (bytes, options), which is exactly the precondition a
// content-addressed cache needs.
//
// Two layers: Store persists entries in a SQLite database
// (modernc.org/sqlite, no cgo); Front wraps a Store with an in-process
// LRU (github.com/hashicorp/golang-lru/v2) so hot keys never touch disk.
package cache
