// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package lexer implements the tokenizer: it turns the code-point stream
// internal/chars produces into a stream of internal/token.Token values,
// dispatching on the first code point of each construct (numbers with
// bases and precision marks, quoted strings, backtick-separated symbol
// names, and the multi-rune operator alphabet).
package lexer

import (
	"sort"
	"strings"

	"github.com/mdhender/wlparse/internal/chars"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// FirstLineMode selects how the first line of input is treated.
type FirstLineMode int

const (
	// FirstLineCheckShebang swallows a leading "#!" line as comment
	// trivia when present. This is the default.
	FirstLineCheckShebang FirstLineMode = iota
	// FirstLineNormal tokenizes the first line like any other.
	FirstLineNormal
	// FirstLineAlwaysScript swallows the whole first line as comment
	// trivia whether or not it starts with "#!".
	FirstLineAlwaysScript
)

// Lexer tokenizes one input buffer. It owns a chars.Decoder and never
// looks at raw bytes directly except when peeking ahead for multi-rune
// operator spellings.
type Lexer struct {
	dec    *chars.Decoder
	input  []byte
	issues []diag.Issue

	sawNonShebangToken bool

	// FirstLine and StrictASCII may be set after New and before the
	// first call to Next.
	FirstLine   FirstLineMode
	StrictASCII bool
}

// New returns a Lexer positioned at the start of input. tabWidth is
// forwarded to the underlying chars.Decoder; 0 selects
// chars.DefaultTabWidth.
func New(input []byte, tabWidth int) *Lexer {
	return &Lexer{
		dec:   chars.NewDecoder(input, tabWidth),
		input: input,
	}
}

// Issues returns every issue recorded by the character layer and the
// tokenizer so far, merged into source order.
func (lx *Lexer) Issues() []diag.Issue {
	out := make([]diag.Issue, 0, len(lx.dec.Issues())+len(lx.issues))
	out = append(out, lx.dec.Issues()...)
	out = append(out, lx.issues...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Span.Start.Byte < out[j].Span.Start.Byte
	})
	return out
}

func (lx *Lexer) issue(sev diag.Severity, msg string, sp span.Span) {
	lx.issues = append(lx.issues, diag.Issue{Kind: "lexer", Severity: sev, Message: msg, Span: sp})
}

// Next returns the next significant token, with any intervening trivia
// attached as its LeadingTrivia. It returns a Token with Kind == token.EOF
// exactly once, at the end of input; callers should stop calling Next
// after that.
func (lx *Lexer) Next() *token.Token {
	lx.dec.StrictASCII = lx.StrictASCII
	leading := lx.scanTrivia()

	start := lx.dec.Pos()
	if lx.dec.AtEOF() {
		t := &token.Token{Kind: token.EOF, Span: span.At(start), LeadingTrivia: leading}
		return t
	}

	tok := lx.scanSignificant()
	tok.LeadingTrivia = leading
	lx.sawNonShebangToken = true
	return tok
}

// scanTrivia consumes a run of whitespace, newlines, comments, and
// line-continuations, returning them as trivia in source order. The
// first line of input gets one extra trivia rule: a leading "#!" shebang
// line is swallowed as a Comment, since Wolfram Language scripts may be
// invoked directly as executables.
func (lx *Lexer) scanTrivia() []token.Trivia {
	var trivia []token.Trivia

	if !lx.sawNonShebangToken && lx.FirstLine != FirstLineNormal && lx.dec.Pos().Line == 1 && lx.dec.Pos().Char == 0 {
		if t, ok := lx.scanShebang(); ok {
			trivia = append(trivia, t)
		}
	}

	for {
		start := lx.dec.Pos()
		if lx.dec.AtEOF() {
			return trivia
		}
		cp := lx.dec.Peek()

		switch {
		case cp.Kind == chars.Normal && cp.R == '(' && lx.peekRunes(2) == "(*":
			trivia = append(trivia, lx.scanComment())
		case cp.Kind == chars.Normal && cp.R == '\\' && lx.isLineContinuation():
			trivia = append(trivia, lx.scanLineContinuation())
		case cp.Kind == chars.Normal && chars.IsNewline(cp.R):
			lx.dec.Next()
			trivia = append(trivia, token.Trivia{Kind: token.Newline, Span: span.Span{Start: start, End: lx.dec.Pos()}})
		case cp.Kind == chars.Normal && chars.IsWhitespace(cp.R):
			for {
				c := lx.dec.Peek()
				if c.Kind != chars.Normal || !chars.IsWhitespace(c.R) {
					break
				}
				lx.dec.Next()
			}
			trivia = append(trivia, token.Trivia{Kind: token.Whitespace, Span: span.Span{Start: start, End: lx.dec.Pos()}})
		default:
			return trivia
		}
	}
}

// scanShebang consumes a "#!"-prefixed first line, if present. In
// FirstLineAlwaysScript mode the "#!" prefix is not required: any
// non-empty first line is swallowed.
func (lx *Lexer) scanShebang() (token.Trivia, bool) {
	if lx.FirstLine != FirstLineAlwaysScript && lx.peekRunes(2) != "#!" {
		return token.Trivia{}, false
	}
	if lx.dec.AtEOF() {
		return token.Trivia{}, false
	}
	start := lx.dec.Pos()
	for {
		if lx.dec.AtEOF() {
			break
		}
		cp := lx.dec.Peek()
		if cp.Kind == chars.Normal && chars.IsNewline(cp.R) {
			break
		}
		lx.dec.Next()
	}
	end := lx.dec.Pos()
	if end.Byte == start.Byte {
		return token.Trivia{}, false
	}
	return token.Trivia{Kind: token.Comment, Span: span.Span{Start: start, End: end}}, true
}

// isLineContinuation reports whether the decoder is positioned at a
// backslash immediately followed by a newline -- a line-continuation,
// not an escape.
func (lx *Lexer) isLineContinuation() bool {
	mark := lx.dec.Mark()
	defer lx.dec.Reset(mark)
	if lx.dec.AtEOF() {
		return false
	}
	cp, _ := lx.dec.Next()
	if cp.Kind != chars.Normal || cp.R != '\\' {
		return false
	}
	if lx.dec.AtEOF() {
		return false
	}
	next := lx.dec.Peek()
	return next.Kind == chars.Normal && chars.IsNewline(next.R)
}

// scanLineContinuation consumes the backslash and the newline it
// protects.
func (lx *Lexer) scanLineContinuation() token.Trivia {
	start := lx.dec.Pos()
	lx.dec.Next() // backslash
	lx.dec.Next() // newline
	return token.Trivia{Kind: token.LineContinuation, Span: span.Span{Start: start, End: lx.dec.Pos()}}
}

// scanComment consumes a (* ... *) comment, honoring nesting.
func (lx *Lexer) scanComment() token.Trivia {
	start := lx.dec.Pos()
	lx.dec.Next() // (
	lx.dec.Next() // *
	depth := 1
	for depth > 0 {
		if lx.dec.AtEOF() {
			lx.issue(diag.Fatal, "unterminated comment", span.Span{Start: start, End: lx.dec.Pos()})
			break
		}
		if lx.peekRunes(2) == "(*" {
			lx.dec.Next()
			lx.dec.Next()
			depth++
			continue
		}
		if lx.peekRunes(2) == "*)" {
			lx.dec.Next()
			lx.dec.Next()
			depth--
			continue
		}
		lx.dec.Next()
	}
	return token.Trivia{Kind: token.Comment, Span: span.Span{Start: start, End: lx.dec.Pos()}}
}

// peekRunes returns the next n code points as a string without consuming
// them, or "" if fewer than n Normal code points remain (a Special,
// LinearSyntax, Unsafe, or EOF code point in the lookahead window always
// breaks the match, since every ASCII spelling this is used for is
// Normal runes only).
func (lx *Lexer) peekRunes(n int) string {
	mark := lx.dec.Mark()
	defer lx.dec.Reset(mark)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if lx.dec.AtEOF() {
			return ""
		}
		cp, _ := lx.dec.Next()
		if cp.Kind != chars.Normal {
			return ""
		}
		sb.WriteRune(cp.R)
	}
	return sb.String()
}

// scanSignificant dispatches on the next code point to scan one
// significant (non-trivia) token.
func (lx *Lexer) scanSignificant() *token.Token {
	start := lx.dec.Pos()
	cp := lx.dec.Peek()

	switch cp.Kind {
	case chars.LinearSyntax:
		lx.dec.Next()
		kind := token.LinearSyntaxOpen
		if cp.R == '>' {
			kind = token.LinearSyntaxClose
		}
		return &token.Token{Kind: kind, Span: span.Span{Start: start, End: lx.dec.Pos()}}
	case chars.Unsafe:
		lx.dec.Next()
		lx.issue(diag.Error, "unsafe code point in token position", span.Span{Start: start, End: lx.dec.Pos()})
		return &token.Token{Kind: token.Illegal, Span: span.Span{Start: start, End: lx.dec.Pos()}}
	case chars.Special:
		if chars.IsLetterLike(cp.R) {
			return lx.scanSymbol()
		}
		if kind, ok := namedCharacterOperators[cp.R]; ok {
			lx.dec.Next()
			return &token.Token{Kind: kind, Span: span.Span{Start: start, End: lx.dec.Pos()}}
		}
		lx.dec.Next()
		sp := span.Span{Start: start, End: lx.dec.Pos()}
		lx.issue(diag.Error, "escape resolves to a character with no token meaning", sp)
		return &token.Token{Kind: token.Illegal, Span: sp}
	}

	switch {
	case cp.R == '"':
		return lx.scanString()
	case chars.IsDigit(cp.R):
		return lx.scanNumber()
	case chars.IsLetterLike(cp.R):
		return lx.scanSymbol()
	case cp.R == '#':
		return lx.scanSlotOrHash()
	case cp.R == '%':
		return lx.scanOut()
	default:
		return lx.scanOperator()
	}
}

// scanOperator matches the longest operator spelling at the current
// position, falling back to a single-rune Illegal token with an issue if
// nothing matches.
func (lx *Lexer) scanOperator() *token.Token {
	start := lx.dec.Pos()
	for n := maxOperatorRunes; n >= 1; n-- {
		cand := lx.peekRunes(n)
		if cand == "" {
			continue
		}
		if kind, ok := operatorTable[cand]; ok {
			for i := 0; i < n; i++ {
				lx.dec.Next()
			}
			return &token.Token{Kind: kind, Span: span.Span{Start: start, End: lx.dec.Pos()}}
		}
	}
	_, sp := lx.dec.Next()
	lx.issue(diag.Error, "unrecognized character", sp)
	return &token.Token{Kind: token.Illegal, Span: span.Span{Start: start, End: sp.End}}
}
