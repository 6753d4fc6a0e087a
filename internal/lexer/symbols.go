// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import (
	"github.com/mdhender/wlparse/internal/chars"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// scanSymbol scans a symbol name, including any backtick-separated
// context parts (e.g. System`Internal`symbolName). Each backtick is
// consumed as part of the identifier's text rather than emitted as a
// separate Backtick token, since a context separator is syntactically
// part of the name, not an operator between two names; the standalone
// Backtick token kind exists for other grammar positions.
//
// Backtick structure is validated: every separator must sit between two
// non-empty name segments, so a doubled backtick or one that ends the
// name tags the token with an issue. The malformed span still lexes as
// one Identifier rather than truncating at the bad separator.
func (lx *Lexer) scanSymbol() *token.Token {
	start := lx.dec.Pos()
	lx.consumeNameRun()

	badShape := false
	for lx.peekRune() == '`' {
		lx.dec.Next() // backtick
		if !lx.consumeNameRun() {
			badShape = true
		}
	}

	sp := span.Span{Start: start, End: lx.dec.Pos()}
	if badShape {
		lx.issue(diag.Error, "malformed symbol name: ` must separate two non-empty context segments", sp)
	}
	return &token.Token{Kind: token.Identifier, Span: sp}
}

// consumeNameRun consumes a run of letter-like and digit code points,
// including Special code points resolved from named-character escapes
// that classify as letter-like (e.g. \[Alpha] inside a symbol name). It
// reports whether anything was consumed.
func (lx *Lexer) consumeNameRun() bool {
	consumed := false
	for {
		if lx.dec.AtEOF() {
			return consumed
		}
		cp := lx.dec.Peek()
		switch cp.Kind {
		case chars.Normal, chars.Special:
			if chars.IsLetterLike(cp.R) || chars.IsDigit(cp.R) {
				lx.dec.Next()
				consumed = true
				continue
			}
		}
		return consumed
	}
}

// scanSlotOrHash scans #, #1, #name, or ## / ##1 (Slot and
// SlotSequence).
func (lx *Lexer) scanSlotOrHash() *token.Token {
	start := lx.dec.Pos()
	lx.dec.Next() // first #
	kind := token.Slot
	if lx.peekRune() == '#' {
		lx.dec.Next()
		kind = token.SlotSequence
	}
	if chars.IsDigit(lx.peekRune()) {
		lx.consumeDigits(10)
	} else {
		lx.consumeNameRun()
	}
	return &token.Token{Kind: kind, Span: span.Span{Start: start, End: lx.dec.Pos()}}
}

// scanOut scans %, %%, %%%, or %n (Out).
func (lx *Lexer) scanOut() *token.Token {
	start := lx.dec.Pos()
	lx.dec.Next() // first %
	for lx.peekRune() == '%' {
		lx.dec.Next()
	}
	if chars.IsDigit(lx.peekRune()) {
		lx.consumeDigits(10)
	}
	return &token.Token{Kind: token.Out, Span: span.Span{Start: start, End: lx.dec.Pos()}}
}
