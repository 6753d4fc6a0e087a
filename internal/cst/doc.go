// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cst implements the Pratt operator-precedence parser: it
// turns the token stream internal/lexer produces into a
// Concrete Syntax Tree that retains every token, including trivia. The
// parser never aborts; on an unexpected token it records a diag.Issue and
// either synthesizes a recovery token or wraps the partial parse in an
// error node, always producing a usable (if partial) tree.
package cst
