// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import (
	"github.com/mdhender/wlparse/internal/chars"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// scanString scans a double-quoted string literal. Escapes inside the
// string (named characters, hex/octal escapes, linear-syntax markers)
// were already resolved by the character layer; this scanner only needs
// to find the matching closing quote, which chars.Decoder never reports
// as part of an escape since `"` has no escape meaning of its own except
// via the one-letter `\"` form.
func (lx *Lexer) scanString() *token.Token {
	start := lx.dec.Pos()
	lx.dec.Next() // opening quote

	// String literals may span lines, so a newline does not terminate the
	// scan; only a closing quote or end of input does.
	for {
		if lx.dec.AtEOF() {
			lx.issue(diag.Fatal, "unterminated string literal", span.Span{Start: start, End: lx.dec.Pos()})
			break
		}
		cp := lx.dec.Peek()
		if cp.Kind == chars.Normal && cp.R == '"' {
			lx.dec.Next()
			break
		}
		lx.dec.Next()
	}

	return &token.Token{Kind: token.String, Span: span.Span{Start: start, End: lx.dec.Pos()}}
}
