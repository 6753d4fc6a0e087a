// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cst_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/mdhender/wlparse/internal/cst"
	"github.com/mdhender/wlparse/internal/cst/csttest"
	"github.com/mdhender/wlparse/internal/diag"
)

func TestPrecedenceAndAssociativity(t *testing.T) {
	// "1 + 2 * 3" -> Plus[1, Times[2,3]] at the AST level; at the CST
	// level Times binds tighter so it nests on the right of Plus.
	root, issues := cst.Parse([]byte("1 + 2 * 3"), 0)
	for _, iss := range issues {
		if iss.IsFatal() {
			t.Fatalf("unexpected fatal issue: %v", iss)
		}
	}
	got := csttest.Snapshot(root, []byte("1 + 2 * 3"))
	want := csttest.Op("Operator", "Plus",
		csttest.Tok("1"), csttest.Tok("+"),
		csttest.Op("Operator", "Times", csttest.Tok("2"), csttest.Tok("*"), csttest.Tok("3")),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestLeftAssociativeChain(t *testing.T) {
	// a - b - c is left-nested: Subtract[Subtract[a,b],c] at the CST level.
	root, _ := cst.Parse([]byte("a - b - c"), 0)
	got := csttest.Snapshot(root, []byte("a - b - c"))
	want := csttest.Op("Operator", "Subtract",
		csttest.Op("Operator", "Subtract", csttest.Tok("a"), csttest.Tok("-"), csttest.Tok("b")),
		csttest.Tok("-"), csttest.Tok("c"),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestRightAssociativeChain(t *testing.T) {
	// a -> b -> c is right-nested: Rule[a, Rule[b,c]].
	root, _ := cst.Parse([]byte("a -> b -> c"), 0)
	got := csttest.Snapshot(root, []byte("a -> b -> c"))
	want := csttest.Op("Operator", "Rule",
		csttest.Tok("a"), csttest.Tok("->"),
		csttest.Op("Operator", "Rule", csttest.Tok("b"), csttest.Tok("->"), csttest.Tok("c")),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestReplaceAllBindsLooserThanRule(t *testing.T) {
	// "a /. b -> c" -> ReplaceAll[a, Rule[b,c]].
	root, _ := cst.Parse([]byte("a /. b -> c"), 0)
	got := csttest.Snapshot(root, []byte("a /. b -> c"))
	want := csttest.Op("Operator", "ReplaceAll",
		csttest.Tok("a"), csttest.Tok("/."),
		csttest.Op("Operator", "Rule", csttest.Tok("b"), csttest.Tok("->"), csttest.Tok("c")),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestCallAndPattern(t *testing.T) {
	src := "f[x_, y_] := x + y"
	root, issues := cst.Parse([]byte(src), 0)
	for _, iss := range issues {
		if iss.IsFatal() {
			t.Fatalf("unexpected fatal issue: %v", iss)
		}
	}
	call := csttest.Op("Call", "Call",
		csttest.Tok("f"),
		csttest.Op("Compound", "Pattern", csttest.Tok("x"), csttest.Op("Compound", "Blank", csttest.Tok("_"))),
		csttest.Op("Compound", "Pattern", csttest.Tok("y"), csttest.Op("Compound", "Blank", csttest.Tok("_"))),
	)
	want := csttest.Op("Operator", "SetDelayed",
		call, csttest.Tok(":="),
		csttest.Op("Operator", "Plus", csttest.Tok("x"), csttest.Tok("+"), csttest.Tok("y")),
	)
	got := csttest.Snapshot(root, []byte(src))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestMissingCloseParenRecovers(t *testing.T) {
	// "(1 + 2" parses, with a fatal issue for the missing `)` and a
	// synthetic close.
	root, issues := cst.Parse([]byte("(1 + 2"), 0)
	if root == nil {
		t.Fatalf("expected a partial tree, got nil")
	}
	var sawFatal bool
	for _, iss := range issues {
		if iss.Severity == diag.Fatal {
			sawFatal = true
		}
	}
	if !sawFatal {
		t.Errorf("expected a fatal issue for the missing `)`, got %v", issues)
	}
	if root.Kind != cst.KindGroup || root.Op != "Group" {
		t.Errorf("expected a Group node, got %s/%s", root.Kind, root.Op)
	}
}

func TestBaseNumberLiteral(t *testing.T) {
	root, issues := cst.Parse([]byte("16^^FF"), 0)
	for _, iss := range issues {
		if iss.IsFatal() {
			t.Fatalf("unexpected fatal issue: %v", iss)
		}
	}
	if root.Kind != cst.KindToken {
		t.Fatalf("expected a single leaf token, got %s", root.Kind)
	}
	if root.Tok.Text([]byte("16^^FF")) != "16^^FF" {
		t.Errorf("unexpected literal text %q", root.Tok.Text([]byte("16^^FF")))
	}
}

func TestOptionalAfterPatternBlank(t *testing.T) {
	// x_:5 is Optional[Pattern[x, Blank[]], 5], not Pattern[x, Pattern[...]]
	root, _ := cst.Parse([]byte("x_:5"), 0)
	got := csttest.Snapshot(root, []byte("x_:5"))
	want := csttest.Op("Operator", "Optional",
		csttest.Op("Compound", "Pattern", csttest.Tok("x"), csttest.Op("Compound", "Blank", csttest.Tok("_"))),
		csttest.Tok(":"), csttest.Tok("5"),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestTreeIsLossless(t *testing.T) {
	// Concatenating every reachable token's text, trivia included, must
	// reproduce the input byte-for-byte, brackets and commas included.
	inputs := []string{
		"f[x, y]",
		"{1, 2, 3}",
		"(* doc *) f[ a , g[b] ] + {c}",
		"<|a -> 1, b -> 2|>",
		"a[[1, 2]]",
	}
	for _, src := range inputs {
		root, _ := cst.Parse([]byte(src), 0)
		var out []byte
		for _, tk := range root.Tokens() {
			out = append(out, tk.TextWithTrivia([]byte(src))...)
		}
		if string(out) != src {
			t.Errorf("round trip of %q produced %q", src, out)
		}
	}
}

func TestEmptyArgumentSlots(t *testing.T) {
	// f[,x] and trailing commas produce NullSlot placeholders.
	root, _ := cst.Parse([]byte("f[,x]"), 0)
	got := csttest.Snapshot(root, []byte("f[,x]"))
	want := csttest.Op("Call", "Call",
		csttest.Tok("f"),
		csttest.Op("Compound", "NullSlot"),
		csttest.Tok("x"),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}
