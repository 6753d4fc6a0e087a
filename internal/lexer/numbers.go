// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import (
	"fmt"
	"strconv"

	"github.com/mdhender/wlparse/internal/chars"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// scanNumber scans an integer or real literal: plain
// decimal digits, an optional base prefix (`n^^digits`, base 2..36), an
// optional decimal point and fractional digits, an optional precision
// mark (`` `digits `` or a bare backtick for machine precision), and an
// optional `*^exponent` scientific-notation suffix.
//
// An out-of-range base or an empty mantissa after `^^` yields an
// Illegal token with a descriptive issue; the scan still consumes the
// maximal prefix of the malformed literal so the parser never re-reads
// its bytes.
func (lx *Lexer) scanNumber() *token.Token {
	start := lx.dec.Pos()
	kind := token.Integer

	intDigits := lx.consumeDigits(10)

	base := 10
	if lx.peekRunes(2) == "^^" {
		lx.dec.Next() // ^
		lx.dec.Next() // ^
		n, err := strconv.Atoi(intDigits)
		if err != nil || n < 2 || n > 36 {
			lx.consumeDigits(36)
			sp := span.Span{Start: start, End: lx.dec.Pos()}
			lx.issue(diag.Error, fmt.Sprintf("base `%s^^` is out of range (must be 2..36)", intDigits), sp)
			return &token.Token{Kind: token.Illegal, Span: sp}
		}
		if lx.consumeDigits(36) == "" {
			sp := span.Span{Start: start, End: lx.dec.Pos()}
			lx.issue(diag.Error, "empty mantissa after base mark", sp)
			return &token.Token{Kind: token.Illegal, Span: sp}
		}
		// The base value itself is validated above; the digit run is
		// scanned permissively in base 36, so a digit that exceeds the
		// declared base (e.g. the 9 in 2^^9) is caught later, when the
		// literal's value is computed against that base.
		base = 36
	}

	if lx.peekRune() == '.' {
		// scanNumber is only entered once a leading digit has already
		// been seen (see the dispatch in scanSignificant), so a bare "."
		// here is always a decimal point, e.g. trailing-dot reals like
		// "3." are valid; fractional digits after it are optional.
		lx.dec.Next()
		kind = token.Real
		lx.consumeDigits(base)
	}

	if lx.peekRune() == '`' {
		lx.dec.Next()
		kind = token.Real
		if lx.peekRune() == '`' {
			lx.dec.Next() // accuracy form ``digits
		}
		if chars.IsDigit(lx.peekRune()) || lx.peekRune() == '-' || lx.peekRune() == '+' {
			if lx.peekRune() == '-' || lx.peekRune() == '+' {
				lx.dec.Next()
			}
			lx.consumeDigits(10)
			if lx.peekRune() == '.' {
				lx.dec.Next()
				lx.consumeDigits(10)
			}
		}
	}

	if lx.peekRunes(2) == "*^" {
		lx.dec.Next()
		lx.dec.Next()
		kind = token.Real
		if lx.peekRune() == '-' || lx.peekRune() == '+' {
			lx.dec.Next()
		}
		if lx.consumeDigits(10) == "" {
			lx.issue(diag.Error, "malformed exponent in number literal", span.Span{Start: start, End: lx.dec.Pos()})
		}
	}

	return &token.Token{Kind: kind, Span: span.Span{Start: start, End: lx.dec.Pos()}}
}

// consumeDigits consumes a run of digits valid in the given base and
// returns the consumed text; "" means no digit matched.
func (lx *Lexer) consumeDigits(base int) string {
	var run []rune
	for {
		r := lx.peekRune()
		if r == 0 || !chars.IsBaseDigit(r, base) {
			break
		}
		lx.dec.Next()
		run = append(run, r)
	}
	return string(run)
}

// peekRune returns the next rune without consuming it, or 0 at EOF or on
// a non-Normal code point (escapes, linear syntax markers) that number
// scanning never spans.
func (lx *Lexer) peekRune() rune {
	if lx.dec.AtEOF() {
		return 0
	}
	cp := lx.dec.Peek()
	if cp.Kind != chars.Normal {
		return 0
	}
	return cp.R
}
