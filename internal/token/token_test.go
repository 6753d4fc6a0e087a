// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package token_test

import (
	"testing"

	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

func TestKind_String(t *testing.T) {
	if got := token.Identifier.String(); got != "Identifier" {
		t.Errorf("Identifier.String() = %q, want %q", got, "Identifier")
	}
	if got := token.Kind(9999).String(); got != "Kind(9999)" {
		t.Errorf("unknown kind String() = %q, want fallback format", got)
	}
}

func TestTriviaKind_String(t *testing.T) {
	if got := token.Whitespace.String(); got != "Whitespace" {
		t.Errorf("Whitespace.String() = %q, want %q", got, "Whitespace")
	}
}

func TestToken_TextWithTrivia(t *testing.T) {
	src := []byte("  foo  ")
	tok := &token.Token{
		Kind: token.Identifier,
		Span: span.Span{
			Start: span.Pos{Byte: 2, Char: 2, Line: 1, Col: 3},
			End:   span.Pos{Byte: 5, Char: 5, Line: 1, Col: 6},
		},
		LeadingTrivia: []token.Trivia{{
			Kind: token.Whitespace,
			Span: span.Span{Start: span.Pos{Byte: 0}, End: span.Pos{Byte: 2}},
		}},
		TrailingTrivia: []token.Trivia{{
			Kind: token.Whitespace,
			Span: span.Span{Start: span.Pos{Byte: 5}, End: span.Pos{Byte: 7}},
		}},
	}
	if got := tok.Text(src); got != "foo" {
		t.Errorf("Text() = %q, want %q", got, "foo")
	}
	if got := tok.TextWithTrivia(src); got != "  foo  " {
		t.Errorf("TextWithTrivia() = %q, want %q", got, "  foo  ")
	}
}
