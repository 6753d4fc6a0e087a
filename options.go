// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wlparse

import (
	"github.com/mdhender/wlparse/internal/ast"
	"github.com/mdhender/wlparse/internal/lexer"
)

// FirstLineMode selects how the first line of input is treated.
type FirstLineMode int

const (
	// FirstLineNormal tokenizes the first line like any other.
	FirstLineNormal FirstLineMode = iota
	// FirstLineCheckShebang swallows a leading "#!" line as comment
	// trivia when present.
	FirstLineCheckShebang
	// FirstLineAlwaysScript swallows the whole first line as comment
	// trivia whether or not it starts with "#!".
	FirstLineAlwaysScript
)

// EncodingMode selects how bytes outside printable ASCII are treated.
type EncodingMode int

const (
	// EncodingNormal accepts any valid UTF-8.
	EncodingNormal EncodingMode = iota
	// EncodingStrictASCII raises an encoding issue for every byte at or
	// above 0x80 outside an escape sequence. The parse still proceeds.
	EncodingStrictASCII
)

// SourceConvention selects which representation of a source location a
// caller reads. Every Pos carries both, so the convention only affects
// which fields a consumer should treat as authoritative; it never
// changes the parse.
type SourceConvention int

const (
	// ConventionLineColumn addresses locations by 1-based line and
	// tab-expanded column.
	ConventionLineColumn SourceConvention = iota
	// ConventionCharOffset addresses locations by character and byte
	// offset from the start of input.
	ConventionCharOffset
)

// ParseOptions configures a single parse. It is a plain struct, not a
// file-backed one -- internal/config is the CLI's own JSON-loaded default
// store, and cmd/wlparse is responsible for turning a loaded config into
// a ParseOptions value before calling into this package; the library
// itself never reads a file.
type ParseOptions struct {
	// TabWidth is the column width a tab character expands to when
	// computing Span.Pos.Col. Zero selects internal/chars.DefaultTabWidth.
	TabWidth int

	// FirstLine selects shebang handling for the first line of input.
	FirstLine FirstLineMode

	// Encoding selects strict-ASCII checking.
	Encoding EncodingMode

	// Convention records which source-location representation the caller
	// reads. Informational: every Pos carries both.
	Convention SourceConvention

	// Quirks selects legacy-compatible abstraction behaviors. Only
	// meaningful for ParseAST/ParseASTSequence/Parse; Tokenize and
	// ParseCST never consult it.
	Quirks ast.Quirks
}

func (o ParseOptions) tabWidth() int {
	if o.TabWidth > 0 {
		return o.TabWidth
	}
	return 0 // internal/chars.DefaultTabWidth is applied by the decoder itself when given 0
}

// newLexer builds an internal lexer configured per o.
func (o ParseOptions) newLexer(src []byte) *lexer.Lexer {
	lx := lexer.New(src, o.tabWidth())
	switch o.FirstLine {
	case FirstLineNormal:
		lx.FirstLine = lexer.FirstLineNormal
	case FirstLineAlwaysScript:
		lx.FirstLine = lexer.FirstLineAlwaysScript
	default:
		lx.FirstLine = lexer.FirstLineCheckShebang
	}
	lx.StrictASCII = o.Encoding == EncodingStrictASCII
	return lx
}
