// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package span implements the source-location and span types shared by the
// character layer, tokenizer, and parser. Every layer in the pipeline reads
// and writes the same Pos/Span pair so a Span computed while decoding
// escapes survives unchanged through tokenization, CST construction, and
// AST abstraction.
package span

// Pos is a source location. Both representations, line/column
// (tab-expanded) and character/byte offset, are carried on every Pos so a
// caller can read whichever one its configured source convention calls for
// without the decoder needing to choose in advance.
type Pos struct {
	Byte int // byte offset from the start of input
	Char int // code point offset from the start of input
	Line int // 1-based
	Col  int // 1-based, tab-expanded
}

// Span is a half-open [Start, End) interval over source positions.
type Span struct {
	Start Pos
	End   Pos
}

// Empty reports whether the span covers zero bytes. Every token's span is
// non-empty except the synthetic end-of-file token, so an empty span
// elsewhere in the tree marks a synthesized/recovery node.
func (s Span) Empty() bool {
	return s.Start.Byte == s.End.Byte
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End.Byte - s.Start.Byte
}

// Text returns the slice of src covered by the span. The caller must not
// retain the result past the lifetime of src if src may be reused.
func (s Span) Text(src []byte) string {
	if s.Start.Byte < 0 || s.End.Byte < s.Start.Byte || s.End.Byte > len(src) {
		return ""
	}
	return string(src[s.Start.Byte:s.End.Byte])
}

// Cover returns the minimal span that contains both a and b. A zero Span
// (both Start and End at byte 0 with no distinguishing Line/Col) is treated
// as "no span yet" and the other operand wins outright; this lets callers
// fold Cover over a list of child spans starting from the zero value.
func Cover(a, b Span) Span {
	if a == (Span{}) {
		return b
	}
	if b == (Span{}) {
		return a
	}
	out := a
	if b.Start.Byte < out.Start.Byte {
		out.Start = b.Start
	}
	if b.End.Byte > out.End.Byte {
		out.End = b.End
	}
	return out
}

// At returns a zero-width span at p, used for synthesized tokens and nodes
// inserted during error recovery.
func At(p Pos) Span {
	return Span{Start: p, End: p}
}
