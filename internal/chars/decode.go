// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package chars implements the character layer: a
// Unicode-aware decoder that turns a raw byte buffer into a stream of
// CodePoint values, resolving the backslash-escape grammar and tracking
// tab-expanded line/column positions as it goes. The tokenizer in
// internal/lexer is its main consumer; internal/ast also runs a Decoder
// over string-literal text to resolve escapes.
package chars

import (
	"unicode/utf8"

	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
)

// Kind classifies a decoded CodePoint.
type Kind uint8

const (
	Normal       Kind = iota // an ordinary, safely-decoded rune
	EOF                      // the synthetic end-of-input marker
	Unsafe                   // invalid UTF-8 or a code point the decoder refuses to pass through
	LinearSyntax             // one of the \< \> linear-syntax box markers
	Special                  // a character produced by an escape, e.g. \[Alpha] or \"
)

// DefaultTabWidth is the column width the decoder expands tab characters
// to when no explicit width is configured.
const DefaultTabWidth = 4

// CodePoint is one decoded unit from the character layer. R is meaningful
// for Normal, LinearSyntax (carries '<' or '>'), and Special (carries the
// resolved rune). Name is set only for Special and records the named
// character's name (e.g. "Alpha") for callers that want to preserve the
// original escape spelling.
type CodePoint struct {
	Kind Kind
	R    rune
	Name string
}

// Decoder walks a byte buffer one logical character at a time, resolving
// backslash escapes inline so every layer above it sees already-decoded
// code points instead of raw escape sequences.
type Decoder struct {
	input    []byte
	pos      int // byte index of the next undecoded byte, local to input
	char     int // code point index of the next undecoded byte, local to input
	byteBase int // added to pos when reporting positions
	charBase int // added to char when reporting positions
	line     int // 1-based
	col      int // 1-based, tab-expanded
	tabWidth int

	// StrictASCII makes any byte >= 0x80 outside an escape sequence an
	// encoding error. The offending rune is still passed through so the
	// stream never aborts. May be set before the first call to Next.
	StrictASCII bool

	issues []diag.Issue
}

// NewDecoder returns a Decoder positioned at the start of input. A
// tabWidth of 0 or less uses DefaultTabWidth.
func NewDecoder(input []byte, tabWidth int) *Decoder {
	return NewDecoderAt(input, tabWidth, span.Pos{Line: 1, Col: 1})
}

// NewDecoderAt returns a Decoder over input whose positions are reported
// relative to start rather than the zero position. A caller re-decoding a
// substring borrowed from a larger buffer (e.g. a string literal's escape
// body) passes the substring's own start position here so the issues and
// spans it produces land at their true offsets in the original source
// instead of restarting at byte/line/col zero. Indexing into input itself
// still starts at 0 regardless of start.Byte/start.Char -- only the
// *reported* positions are shifted.
func NewDecoderAt(input []byte, tabWidth int, start span.Pos) *Decoder {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Decoder{
		input:    input,
		byteBase: start.Byte,
		charBase: start.Char,
		line:     start.Line,
		col:      start.Col,
		tabWidth: tabWidth,
	}
}

// Pos returns the decoder's current position.
func (d *Decoder) Pos() span.Pos {
	return span.Pos{Byte: d.pos + d.byteBase, Char: d.char + d.charBase, Line: d.line, Col: d.col}
}

// AtEOF reports whether the decoder has consumed all of input.
func (d *Decoder) AtEOF() bool {
	return d.pos >= len(d.input)
}

// Issues returns the encoding-level issues accumulated so far. Callers
// merge these into the Result's diagnostic stream.
func (d *Decoder) Issues() []diag.Issue {
	return d.issues
}

// State is an opaque snapshot of a Decoder's position, returned by Mark
// and consumed by Reset. It lets the tokenizer try a multi-rune lookahead
// (operator spellings, number formats) and back out cleanly when it
// doesn't match.
type State struct {
	pos, char, line, col int
	issueCount           int
}

// Mark snapshots the decoder's current position.
func (d *Decoder) Mark() State {
	return State{pos: d.pos, char: d.char, line: d.line, col: d.col, issueCount: len(d.issues)}
}

// Reset restores the decoder to a previously Marked position, discarding
// any issues recorded since the mark.
func (d *Decoder) Reset(s State) {
	d.pos, d.char, d.line, d.col = s.pos, s.char, s.line, s.col
	d.issues = d.issues[:s.issueCount]
}

// Peek decodes the next CodePoint without consuming it. It is implemented
// by snapshotting and restoring decoder state around a Next call, since
// escape resolution can consume a variable number of bytes.
func (d *Decoder) Peek() CodePoint {
	saved := *d
	savedIssues := len(d.issues)
	cp, _ := d.Next()
	*d = saved
	d.issues = d.issues[:savedIssues]
	return cp
}

// Next decodes and consumes the next logical character, returning it
// along with the span of source bytes it came from. At end of input it
// returns a CodePoint{Kind: EOF} with a zero-width span at the current
// position.
func (d *Decoder) Next() (CodePoint, span.Span) {
	start := d.Pos()
	if d.AtEOF() {
		return CodePoint{Kind: EOF}, span.At(start)
	}

	if d.input[d.pos] == '\\' && d.pos+1 < len(d.input) {
		if cp, ok := d.tryEscape(); ok {
			return cp, span.Span{Start: start, End: d.Pos()}
		}
	}

	r, sz := d.decodeRune()
	d.advance(r, sz)
	end := d.Pos()

	if r == utf8.RuneError && sz <= 1 {
		d.issue(diag.Error, "invalid UTF-8 encoding", span.Span{Start: start, End: end})
		return CodePoint{Kind: Unsafe, R: r}, span.Span{Start: start, End: end}
	}
	if IsUninterpretable(r) {
		d.issue(diag.Warning, "uninterpretable code point in source", span.Span{Start: start, End: end})
		return CodePoint{Kind: Unsafe, R: r}, span.Span{Start: start, End: end}
	}
	if d.StrictASCII && r >= 0x80 {
		d.issue(diag.Error, "non-ASCII byte in strict-ASCII mode", span.Span{Start: start, End: end})
	}
	return CodePoint{Kind: Normal, R: r}, span.Span{Start: start, End: end}
}

// decodeRune reads one rune at the current position without advancing.
func (d *Decoder) decodeRune() (rune, int) {
	return utf8.DecodeRune(d.input[d.pos:])
}

// advance moves the decoder past one rune of size sz, updating line/char
// accounting. It folds a CRLF pair into a single line break: the caller
// passes the rune just decoded (the CR), and advance itself looks ahead
// for a following LF and consumes it too.
func (d *Decoder) advance(r rune, sz int) {
	d.pos += sz
	d.char++

	if r == '\r' && d.pos < len(d.input) && d.input[d.pos] == '\n' {
		d.pos++
		d.char++
		d.line++
		d.col = 1
		return
	}
	if IsNewline(r) {
		d.line++
		d.col = 1
		return
	}
	if r == '\t' {
		d.col += d.tabWidth - ((d.col - 1) % d.tabWidth)
		return
	}
	d.col++
}

func (d *Decoder) issue(sev diag.Severity, msg string, sp span.Span) {
	d.issues = append(d.issues, diag.Issue{
		Kind:     "chars.encoding",
		Severity: sev,
		Message:  msg,
		Span:     sp,
	})
}
