// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chars

import (
	"strconv"
	"unicode/utf8"

	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
)

// oneLetterEscapes maps the second byte of a two-byte backslash escape to
// the control character it produces.
var oneLetterEscapes = map[byte]rune{
	'n': '\n',
	't': '\t',
	'r': '\r',
	'b': rune(0x0008),
	'f': rune(0x000C),
	'a': rune(0x0007),
	'e': rune(0x001B),
	'\\': '\\',
	'"':  '"',
}

// tryEscape attempts to resolve a backslash escape starting at d.pos. It
// assumes d.input[d.pos] == '\\' and that at least one more byte follows.
// On success it consumes the whole escape sequence and returns the
// resolved CodePoint. On failure it consumes nothing and returns
// ok == false so the caller falls back to treating the backslash as an
// ordinary character; it records an Issue unless the backslash precedes
// a newline (a line continuation).
func (d *Decoder) tryEscape() (CodePoint, bool) {
	next := d.input[d.pos+1]
	switch {
	case next == '[':
		return d.tryNamedEscape()
	case next == ':':
		return d.tryHexEscape(2, 4)
	case next == '|':
		return d.tryHexEscape(2, 6)
	case next == '.':
		return d.tryHexEscape(2, 2)
	case next == '<':
		d.consumeBytes(2)
		return CodePoint{Kind: LinearSyntax, R: '<'}, true
	case next == '>':
		d.consumeBytes(2)
		return CodePoint{Kind: LinearSyntax, R: '>'}, true
	case IsOctalDigit(rune(next)):
		return d.tryOctalEscape()
	default:
		if r, ok := oneLetterEscapes[next]; ok {
			// Kind Special, not Normal, so consumers can tell an
			// escape-produced character from a raw source character: a \"
			// inside a string must not read as the closing quote, and a \\
			// before a newline must not read as a line continuation.
			d.consumeBytes(2)
			return CodePoint{Kind: Special, R: r}, true
		}
		// A backslash before a newline is a line continuation, handled as
		// trivia by the tokenizer, not a malformed escape.
		if r, _ := utf8.DecodeRune(d.input[d.pos+1:]); !IsNewline(r) {
			d.issue(diag.Warning, "unrecognized escape sequence", span.At(d.Pos()))
		}
		return CodePoint{}, false
	}
}

// isNameByte reports whether b can appear inside a \[Name] escape's name.
func isNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// tryNamedEscape resolves \[Name] against the named-character table.
func (d *Decoder) tryNamedEscape() (CodePoint, bool) {
	i := d.pos + 2
	start := i
	for i < len(d.input) && isNameByte(d.input[i]) {
		i++
	}
	if i == start || i >= len(d.input) || d.input[i] != ']' {
		d.issue(diag.Error, "malformed named-character escape", span.At(d.Pos()))
		return CodePoint{}, false
	}
	name := string(d.input[start:i])
	r, ok := NamedCharacter(name)
	if !ok {
		d.issue(diag.Error, "unknown named character: \\["+name+"]", span.At(d.Pos()))
		return CodePoint{}, false
	}
	d.consumeBytes(i + 1 - d.pos)
	return CodePoint{Kind: Special, R: r, Name: name}, true
}

// tryHexEscape resolves a fixed-width hex escape: prefixLen is the number
// of bytes before the hex digits (always 2: backslash plus the marker
// byte), width is the number of hex digits.
func (d *Decoder) tryHexEscape(prefixLen, width int) (CodePoint, bool) {
	start := d.pos + prefixLen
	if start+width > len(d.input) {
		d.issue(diag.Error, "truncated hex escape", span.At(d.Pos()))
		return CodePoint{}, false
	}
	for i := 0; i < width; i++ {
		if !IsHexDigit(rune(d.input[start+i])) {
			d.issue(diag.Error, "malformed hex escape", span.At(d.Pos()))
			return CodePoint{}, false
		}
	}
	v, err := strconv.ParseInt(string(d.input[start:start+width]), 16, 32)
	if err != nil {
		d.issue(diag.Error, "malformed hex escape", span.At(d.Pos()))
		return CodePoint{}, false
	}
	r := rune(v)
	if r >= 0xD800 && r <= 0xDFFF {
		d.issue(diag.Error, "hex escape names a surrogate code point", span.At(d.Pos()))
		return CodePoint{}, false
	}
	d.consumeBytes(prefixLen + width)
	return CodePoint{Kind: Special, R: r}, true
}

// tryOctalEscape resolves the three-digit \NNN escape.
func (d *Decoder) tryOctalEscape() (CodePoint, bool) {
	start := d.pos + 1
	if start+3 > len(d.input) {
		d.issue(diag.Error, "truncated octal escape", span.At(d.Pos()))
		return CodePoint{}, false
	}
	for i := 0; i < 3; i++ {
		if !IsOctalDigit(rune(d.input[start+i])) {
			d.issue(diag.Error, "malformed octal escape", span.At(d.Pos()))
			return CodePoint{}, false
		}
	}
	v, err := strconv.ParseInt(string(d.input[start:start+3]), 8, 32)
	if err != nil {
		d.issue(diag.Error, "malformed octal escape", span.At(d.Pos()))
		return CodePoint{}, false
	}
	d.consumeBytes(1 + 3)
	return CodePoint{Kind: Special, R: rune(v)}, true
}

// consumeBytes advances the decoder past n bytes that are known to belong
// to a single-line escape sequence: none of the bytes a backslash escape
// spans are newlines, so this only ever increments the column.
func (d *Decoder) consumeBytes(n int) {
	for i := 0; i < n; i++ {
		d.pos++
		d.char++
		d.col++
	}
}
