// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wlparse

import (
	"github.com/google/uuid"

	"github.com/mdhender/wlparse/internal/ast"
	"github.com/mdhender/wlparse/internal/cst"
	"github.com/mdhender/wlparse/internal/diag"
)

// Result is the parse envelope: both syntax trees (CST and AST)
// alongside the fatal/non-fatal issue split, plus a ParseID that
// rides along for correlation (e.g. a log line) but plays no
// part in equality or in the parse itself -- two Results for the same
// input and options carry different ParseIDs but identical trees and
// issues.
type Result struct {
	ParseID uuid.UUID

	CST *cst.Node
	AST *ast.Node

	Issues   []diag.Issue
	Fatal    []diag.Issue
	NonFatal []diag.Issue

	// UnsafeEncoding is true when the character layer reported at least
	// one encoding issue (invalid UTF-8, strict-ASCII violation, an
	// uninterpretable code point, or a malformed or unrecognized escape
	// sequence).
	UnsafeEncoding bool
}

func newResult(cstRoot *cst.Node, astRoot *ast.Node, issues []diag.Issue) *Result {
	fatal, nonFatal := diag.Split(issues)
	var unsafeEnc bool
	for _, iss := range issues {
		if iss.Kind == "chars.encoding" {
			unsafeEnc = true
			break
		}
	}
	return &Result{
		ParseID:        uuid.New(),
		CST:            cstRoot,
		AST:            astRoot,
		Issues:         issues,
		Fatal:          fatal,
		NonFatal:       nonFatal,
		UnsafeEncoding: unsafeEnc,
	}
}

// OK reports whether the parse produced no fatal issues.
func (r *Result) OK() bool { return len(r.Fatal) == 0 }
