// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wlparse_test

import (
	"testing"

	"github.com/go-test/deep"

	wlparse "github.com/mdhender/wlparse"
	"github.com/mdhender/wlparse/internal/ast"
	"github.com/mdhender/wlparse/internal/token"
)

func TestTokenizeRoundTripsInput(t *testing.T) {
	// Concatenating every token's text, trivia included, reproduces the
	// input byte-for-byte.
	inputs := []string{
		"1 + 2 * 3",
		"f[x_, y_] := x + y",
		"(* comment *) a /. b -> c",
		"{1, 2, 3}[[2]]",
		"\ta\n\tb",
	}
	for _, src := range inputs {
		toks, _ := wlparse.Tokenize([]byte(src), wlparse.ParseOptions{})
		var out []byte
		for _, tk := range toks {
			out = append(out, tk.TextWithTrivia([]byte(src))...)
		}
		if string(out) != src {
			t.Errorf("round trip of %q produced %q", src, out)
		}
	}
}

func TestParseResultEnvelope(t *testing.T) {
	r := wlparse.Parse([]byte("(1 + 2"), wlparse.ParseOptions{})
	if r.CST == nil || r.AST == nil {
		t.Fatalf("expected both trees even on a fatal parse")
	}
	if r.OK() {
		t.Errorf("expected a fatal issue for the missing `)`")
	}
	if len(r.Fatal)+len(r.NonFatal) != len(r.Issues) {
		t.Errorf("issue split does not partition the issue list")
	}
	if r.UnsafeEncoding {
		t.Errorf("pure-ASCII input should not set UnsafeEncoding")
	}
	if r.ParseID == wlparse.Parse([]byte("(1 + 2"), wlparse.ParseOptions{}).ParseID {
		t.Errorf("two parses should carry distinct ParseIDs")
	}
}

func TestIssuesAreIdempotent(t *testing.T) {
	// Reparsing the same input produces the same issue set in the same
	// order.
	src := []byte(`f[,x] + "unterminated`)
	_, first := wlparse.ParseAST(src, wlparse.ParseOptions{})
	_, second := wlparse.ParseAST(src, wlparse.ParseOptions{})
	if diff := deep.Equal(first, second); diff != nil {
		t.Errorf("issue streams differ across reparses: %v", diff)
	}
}

func TestStrictASCIIFlagsHighBytes(t *testing.T) {
	src := []byte("xéy") // é is two bytes in UTF-8
	opts := wlparse.ParseOptions{Encoding: wlparse.EncodingStrictASCII}
	r := wlparse.Parse(src, opts)
	if !r.UnsafeEncoding {
		t.Errorf("expected UnsafeEncoding for a non-ASCII byte in strict mode")
	}
	if wlparse.Parse(src, wlparse.ParseOptions{}).UnsafeEncoding {
		t.Errorf("normal mode should accept valid UTF-8 silently")
	}
}

func TestFirstLineModes(t *testing.T) {
	src := []byte("#!/usr/bin/env wolframscript\n42")

	toks, _ := wlparse.Tokenize(src, wlparse.ParseOptions{FirstLine: wlparse.FirstLineCheckShebang})
	if toks[0].Kind != token.Integer {
		t.Errorf("shebang mode: expected the integer to be the first token, got %s", toks[0].Kind)
	}
	if len(toks[0].LeadingTrivia) == 0 {
		t.Errorf("shebang mode: expected the #! line to survive as leading trivia")
	}

	toks, _ = wlparse.Tokenize(src, wlparse.ParseOptions{FirstLine: wlparse.FirstLineNormal})
	if toks[0].Kind == token.Integer {
		t.Errorf("normal mode: expected the #! line to tokenize as ordinary tokens")
	}

	script := []byte("this line is not wolfram\n42")
	toks, _ = wlparse.Tokenize(script, wlparse.ParseOptions{FirstLine: wlparse.FirstLineAlwaysScript})
	if toks[0].Kind != token.Integer {
		t.Errorf("script mode: expected the whole first line to be trivia, got %s", toks[0].Kind)
	}
}

func TestSequenceEntryPoints(t *testing.T) {
	src := []byte("a = 1; b = 2; a + b")
	nodes, issues := wlparse.ParseASTSequence(src, wlparse.ParseOptions{})
	for _, iss := range issues {
		if iss.IsFatal() {
			t.Fatalf("unexpected fatal issue: %v", iss)
		}
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 top-level expressions, got %d", len(nodes))
	}
	last := nodes[2]
	if last.Kind != ast.KindCall || last.Head.Name != "Plus" {
		t.Errorf("expected the last expression to abstract to Plus, got %+v", last)
	}
}

func TestQuirkSelection(t *testing.T) {
	src := []byte("f @ x")
	node, _ := wlparse.ParseAST(src, wlparse.ParseOptions{})
	if node.Kind != ast.KindCall || node.Head.Name != "f" {
		t.Errorf("default: f @ x should abstract to f[x], got %+v", node)
	}
	node, _ = wlparse.ParseAST(src, wlparse.ParseOptions{Quirks: ast.QuirkInfixBinaryAt})
	if node.Kind != ast.KindCall || node.Head.Name != "At" {
		t.Errorf("quirk: f @ x should stay a binary At call, got %+v", node)
	}
}
