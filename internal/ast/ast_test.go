// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/mdhender/wlparse/internal/ast"
	"github.com/mdhender/wlparse/internal/ast/asttest"
	"github.com/mdhender/wlparse/internal/cst"
	"github.com/mdhender/wlparse/internal/diag"
)

func parseAST(t *testing.T, src string, q ast.Quirks) *ast.Node {
	t.Helper()
	root, cstIssues := cst.Parse([]byte(src), 0)
	for _, iss := range cstIssues {
		if iss.IsFatal() {
			t.Fatalf("unexpected fatal CST issue parsing %q: %v", src, iss)
		}
	}
	node, astIssues := ast.FromCST(root, []byte(src), q)
	for _, iss := range astIssues {
		if iss.IsFatal() {
			t.Fatalf("unexpected fatal AST issue parsing %q: %v", src, iss)
		}
	}
	return node
}

func TestPlusTimesPrecedence(t *testing.T) {
	// "1 + 2 * 3" -> Plus[1, Times[2,3]]
	got := asttest.Snapshot(parseAST(t, "1 + 2 * 3", 0))
	want := asttest.Call("Plus", asttest.Int("1"), asttest.Call("Times", asttest.Int("2"), asttest.Int("3")))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestUnaryMinusFoldsIntoTimes(t *testing.T) {
	// -2*3 -> Times[-1, 2, 3], flattened, not Times[Times[-1,2],3].
	got := asttest.Snapshot(parseAST(t, "-2*3", 0))
	want := asttest.Call("Times", asttest.Int("-1"), asttest.Int("2"), asttest.Int("3"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestUnaryMinusOverPowerDoesNotDistribute(t *testing.T) {
	// -2^2 -> Times[-1, Power[2,2]]: unary minus binds looser than Power,
	// so the sign wraps the whole power rather than just its base.
	got := asttest.Snapshot(parseAST(t, "-2^2", 0))
	want := asttest.Call("Times", asttest.Int("-1"), asttest.Call("Power", asttest.Int("2"), asttest.Int("2")))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestSubtractionRewritesToPlus(t *testing.T) {
	// a - b - c -> Plus[a, Times[-1,b], Times[-1,c]]
	got := asttest.Snapshot(parseAST(t, "a - b - c", 0))
	want := asttest.Call("Plus",
		asttest.Sym("a"),
		asttest.Call("Times", asttest.Int("-1"), asttest.Sym("b")),
		asttest.Call("Times", asttest.Int("-1"), asttest.Sym("c")),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestNegatedParenthesizedSumDistributes(t *testing.T) {
	// -(a+b) -> Plus[Times[-1,a], Times[-1,b]]
	got := asttest.Snapshot(parseAST(t, "-(a+b)", 0))
	want := asttest.Call("Plus",
		asttest.Call("Times", asttest.Int("-1"), asttest.Sym("a")),
		asttest.Call("Times", asttest.Int("-1"), asttest.Sym("b")),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestDivisionRewritesToTimesPower(t *testing.T) {
	// a/b -> Times[a, Power[b,-1]]
	got := asttest.Snapshot(parseAST(t, "a/b", 0))
	want := asttest.Call("Times", asttest.Sym("a"), asttest.Call("Power", asttest.Sym("b"), asttest.Int("-1")))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestPatternWithDefault(t *testing.T) {
	// x_:5 -> Optional[Pattern[x, Blank[]], 5]
	got := asttest.Snapshot(parseAST(t, "x_:5", 0))
	want := asttest.Call("Optional",
		asttest.Call("Pattern", asttest.Sym("x"), asttest.Call("Blank")),
		asttest.Int("5"),
	)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestTypedBlankHead(t *testing.T) {
	// f[x_Integer] -> f[Pattern[x, Blank[Integer]]]
	got := asttest.Snapshot(parseAST(t, "f[x_Integer]", 0))
	want := asttest.Call("f", asttest.Call("Pattern", asttest.Sym("x"), asttest.Call("Blank", asttest.Sym("Integer"))))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestBaseNumberLiteral(t *testing.T) {
	// 16^^FF -> Integer 255.
	node := parseAST(t, "16^^FF", 0)
	if node.Kind != ast.KindInteger {
		t.Fatalf("expected Integer, got %s", node.Kind)
	}
	if node.IntValue.String() != "255" {
		t.Errorf("expected 255, got %s", node.IntValue.String())
	}
}

func TestOutOfRangeBaseIsAnError(t *testing.T) {
	// 37^^1: base must be 2..36. The tokenizer rejects the prefix
	// outright, so the issue and the error token surface at the CST
	// layer and the abstraction pass carries the error node through
	// unchanged.
	src := []byte("37^^1")
	root, issues := cst.Parse(src, 0)
	var sawRange bool
	for _, iss := range issues {
		if iss.Severity == diag.Error && strings.Contains(iss.Message, "out of range") {
			sawRange = true
		}
	}
	if !sawRange {
		t.Errorf("expected an out-of-range-base issue, got %v", issues)
	}
	if root.Kind != cst.KindError {
		t.Errorf("expected an error node for the malformed literal, got %s", root.Kind)
	}
	node, _ := ast.FromCST(root, src, 0)
	if node.Kind != ast.KindError {
		t.Errorf("expected the error node to survive abstraction, got %s", node.Kind)
	}
}

func TestDigitExceedingDeclaredBaseIsAnError(t *testing.T) {
	// 2^^9 tokenizes as one Integer (the digit run is scanned
	// permissively), but computing its value against base 2 fails.
	root, cstIssues := cst.Parse([]byte("2^^9"), 0)
	for _, iss := range cstIssues {
		if iss.IsFatal() {
			t.Fatalf("unexpected fatal CST issue: %v", iss)
		}
	}
	_, issues := ast.FromCST(root, []byte("2^^9"), 0)
	var sawError bool
	for _, iss := range issues {
		if iss.Severity == diag.Error {
			sawError = true
		}
	}
	if !sawError {
		t.Errorf("expected a malformed-literal issue, got %v", issues)
	}
}

func TestSpanThreeArg(t *testing.T) {
	// a;;b;;c -> Span[a,b,c]
	got := asttest.Snapshot(parseAST(t, "a;;b;;c", 0))
	want := asttest.Call("Span", asttest.Sym("a"), asttest.Sym("b"), asttest.Sym("c"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestSpanMissingStartAndStop(t *testing.T) {
	// ;; -> Span[1, All]
	got := asttest.Snapshot(parseAST(t, ";;", 0))
	want := asttest.Call("Span", asttest.Int("1"), asttest.Sym("All"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestStringEscapeDecoding(t *testing.T) {
	node := parseAST(t, `"hello\nworld"`, 0)
	if node.Kind != ast.KindString {
		t.Fatalf("expected String, got %s", node.Kind)
	}
	if node.StrValue != "hello\nworld" {
		t.Errorf("expected decoded newline, got %q", node.StrValue)
	}
}

func TestAssociationOldQuirkFlattensRulePairs(t *testing.T) {
	got := asttest.Snapshot(parseAST(t, "<|a->1, b->2|>", ast.QuirkOldAssociation))
	want := asttest.Call("Association", asttest.Sym("a"), asttest.Int("1"), asttest.Sym("b"), asttest.Int("2"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestAssociationDefaultKeepsRulePairs(t *testing.T) {
	got := asttest.Snapshot(parseAST(t, "<|a->1|>", 0))
	want := asttest.Call("Association", asttest.Call("Rule", asttest.Sym("a"), asttest.Int("1")))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestAndOrFlattenAssociatively(t *testing.T) {
	got := asttest.Snapshot(parseAST(t, "a && b && c", 0))
	want := asttest.Call("And", asttest.Sym("a"), asttest.Sym("b"), asttest.Sym("c"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestPostfixFactorial(t *testing.T) {
	// n! -> Factorial[n]
	got := asttest.Snapshot(parseAST(t, "n!", 0))
	want := asttest.Call("Factorial", asttest.Sym("n"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}

func TestPostfixIncrementAndFunction(t *testing.T) {
	// x++ -> Increment[x]
	got := asttest.Snapshot(parseAST(t, "x++", 0))
	want := asttest.Call("Increment", asttest.Sym("x"))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}

	// (x+1)& -> Function[Plus[x,1]]
	got = asttest.Snapshot(parseAST(t, "(x+1)&", 0))
	want = asttest.Call("Function", asttest.Call("Plus", asttest.Sym("x"), asttest.Int("1")))
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("snapshot mismatch: %v", diff)
	}
}
