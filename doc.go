// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package wlparse implements a standalone Wolfram-Language input-form
// parser: Tokenize drives the character layer and tokenizer alone,
// ParseCST adds the Pratt parser to produce a concrete syntax tree, and
// ParseAST adds the abstraction pass to produce a normalized syntax tree.
// Parse runs the whole pipeline and wraps the result in a Result, giving
// every caller a per-parse correlation ID to tag a log line with
// regardless of which stage it's inspecting.
//
// Every stage is pure and deterministic: the same bytes and the same
// ParseOptions always produce the same tree and the same issues, which is
// what makes internal/cache's content-addressed store a valid thing to put
// in front of this package.
package wlparse
