// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer_test

import (
	"testing"

	"github.com/mdhender/wlparse/internal/lexer"
	"github.com/mdhender/wlparse/internal/token"
)

type tok struct {
	Kind token.Kind
	Text string
}

func tokenize(t *testing.T, input string) []tok {
	t.Helper()
	lx := lexer.New([]byte(input), 0)
	var got []tok
	for {
		tk := lx.Next()
		if tk.Kind == token.EOF {
			break
		}
		got = append(got, tok{Kind: tk.Kind, Text: tk.Text([]byte(input))})
	}
	return got
}

func TestLexer_SignificantTokenStreams(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "function_call",
			input: "f[x, y]",
			want: []tok{
				{token.Identifier, "f"}, {token.LBracket, "["},
				{token.Identifier, "x"}, {token.Comma, ","},
				{token.Identifier, "y"}, {token.RBracket, "]"},
			},
		},
		{
			name:  "assignment",
			input: "x = 1 + 2",
			want: []tok{
				{token.Identifier, "x"}, {token.SetOp, "="},
				{token.Integer, "1"}, {token.Plus, "+"}, {token.Integer, "2"},
			},
		},
		{
			name:  "delayed_rule",
			input: "f[x_] := x^2",
			want: []tok{
				{token.Identifier, "f"}, {token.LBracket, "["},
				{token.Identifier, "x"}, {token.Blank, "_"}, {token.RBracket, "]"},
				{token.SetDelayedOp, ":="},
				{token.Identifier, "x"}, {token.Caret, "^"}, {token.Integer, "2"},
			},
		},
		{
			name:  "part_extraction",
			input: "a[[1]]",
			want: []tok{
				{token.Identifier, "a"}, {token.LDoubleBracket, "[["},
				{token.Integer, "1"}, {token.RDoubleBracket, "]]"},
			},
		},
		{
			name:  "real_number_with_exponent",
			input: "1.5*^10",
			want:  []tok{{token.Real, "1.5*^10"}},
		},
		{
			name:  "string_literal",
			input: `"hello world"`,
			want:  []tok{{token.String, `"hello world"`}},
		},
		{
			name:  "rule_and_replace_all",
			input: "x /. a -> b",
			want: []tok{
				{token.Identifier, "x"}, {token.ReplaceAll, "/."},
				{token.Identifier, "a"}, {token.Rule, "->"}, {token.Identifier, "b"},
			},
		},
		{
			name:  "context_qualified_symbol",
			input: "System`Private`foo",
			want:  []tok{{token.Identifier, "System`Private`foo"}},
		},
		{
			name:  "slot_and_function",
			input: "#1 + #2 &",
			want: []tok{
				{token.Slot, "#1"}, {token.Plus, "+"},
				{token.Slot, "#2"}, {token.Amp, "&"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenize(t, tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d tokens, want %d\ngot:  %+v\nwant: %+v", len(got), len(tc.want), got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("token[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestLexer_CommentIsTrivia(t *testing.T) {
	lx := lexer.New([]byte("(* a comment *) x"), 0)
	tk := lx.Next()
	if tk.Kind != token.Identifier || tk.Text([]byte("(* a comment *) x")) != "x" {
		t.Fatalf("got %+v, want Identifier x", tk)
	}
	if len(tk.LeadingTrivia) == 0 {
		t.Fatalf("expected leading trivia to carry the comment")
	}
	found := false
	for _, tr := range tk.LeadingTrivia {
		if tr.Kind == token.Comment {
			found = true
		}
	}
	if !found {
		t.Errorf("leading trivia %+v did not include a Comment", tk.LeadingTrivia)
	}
}

func TestLexer_NestedComment(t *testing.T) {
	src := "(* outer (* inner *) still outer *) x"
	lx := lexer.New([]byte(src), 0)
	tk := lx.Next()
	if tk.Kind != token.Identifier {
		t.Fatalf("got %+v, want Identifier after nested comment", tk)
	}
}

func TestLexer_OutOfRangeBaseIsSyntaxError(t *testing.T) {
	// 37^^1: the base prefix is validated by the scanner itself, which
	// still consumes the maximal prefix of the malformed literal.
	src := []byte("37^^1")
	lx := lexer.New(src, 0)
	tk := lx.Next()
	if tk.Kind != token.Illegal {
		t.Fatalf("got %s, want Illegal", tk.Kind)
	}
	if tk.Text(src) != "37^^1" {
		t.Errorf("error token covers %q, want the whole literal", tk.Text(src))
	}
	if len(lx.Issues()) == 0 {
		t.Fatalf("expected an out-of-range-base issue")
	}
}

func TestLexer_EmptyMantissaAfterBaseMark(t *testing.T) {
	src := []byte("16^^ + 1")
	lx := lexer.New(src, 0)
	tk := lx.Next()
	if tk.Kind != token.Illegal {
		t.Fatalf("got %s, want Illegal", tk.Kind)
	}
	if tk.Text(src) != "16^^" {
		t.Errorf("error token covers %q, want %q", tk.Text(src), "16^^")
	}
	if len(lx.Issues()) == 0 {
		t.Fatalf("expected an empty-mantissa issue")
	}
	if next := lx.Next(); next.Kind != token.Plus {
		t.Errorf("expected scanning to resume at the +, got %s", next.Kind)
	}
}

func TestLexer_MalformedSymbolBackticks(t *testing.T) {
	// A doubled backtick and a trailing backtick are invalid symbol
	// shapes: the whole run still lexes as one Identifier, tagged with
	// an issue rather than truncated at the bad separator.
	cases := []struct {
		name  string
		input string
		text  string
	}{
		{"doubled", "a``b", "a``b"},
		{"trailing", "a` ", "a`"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := []byte(tc.input)
			lx := lexer.New(src, 0)
			tk := lx.Next()
			if tk.Kind != token.Identifier {
				t.Fatalf("got %s, want Identifier", tk.Kind)
			}
			if tk.Text(src) != tc.text {
				t.Errorf("token covers %q, want %q", tk.Text(src), tc.text)
			}
			if len(lx.Issues()) == 0 {
				t.Fatalf("expected a malformed-symbol issue")
			}
		})
	}
}

func TestLexer_ValidContextSymbolHasNoIssue(t *testing.T) {
	src := []byte("System`Private`foo")
	lx := lexer.New(src, 0)
	tk := lx.Next()
	if tk.Kind != token.Identifier || tk.Text(src) != "System`Private`foo" {
		t.Fatalf("got %+v, want the full context-qualified Identifier", tk)
	}
	if len(lx.Issues()) != 0 {
		t.Errorf("unexpected issues for a well-formed symbol: %v", lx.Issues())
	}
}

func TestLexer_UnterminatedStringReportsIssue(t *testing.T) {
	lx := lexer.New([]byte(`"unterminated`), 0)
	tk := lx.Next()
	if tk.Kind != token.String {
		t.Fatalf("got %+v, want String (recovered)", tk)
	}
	if len(lx.Issues()) == 0 {
		t.Fatalf("expected an issue for the unterminated string")
	}
}
