// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package token implements the Token/Kind/Trivia types the tokenizer in
// internal/lexer produces and the parser in internal/cst consumes.
// Tokens borrow their text from the source buffer via Span rather than
// copying it.
package token

import (
	"fmt"

	"github.com/mdhender/wlparse/internal/span"
)

// Kind identifies what a Token or Trivia represents: literals, the
// grouping and list delimiters, the common infix/prefix/postfix operator
// spellings, pattern and rule tokens, and the message-template and
// part-extraction tokens.
type Kind int

const (
	Illegal Kind = iota
	EOF

	// Literals.
	Identifier // bare symbol name, e.g. Plus, x, $Context`name
	Integer    // 123, 16^^ff, 2^^1010
	Real       // 1.5, 1.5*^10, 1.5`20
	String     // "quoted text"

	// Grouping and list punctuation.
	LParen         // (
	RParen         // )
	LBracket       // [
	RBracket       // ]
	LBrace         // {
	RBrace         // }
	LDoubleBracket // [[
	RDoubleBracket // ]]
	Comma
	Semicolon // CompoundExpression separator

	// Context and part-extraction punctuation.
	Backtick    // ` context separator inside a symbol name
	Dot         // .
	DoubleColon // :: (message name separator)
	Colon       // : (pattern / optional-default separator)

	// Arithmetic and power operators.
	Plus
	Minus
	Star     // *
	Slash    // /
	Caret    // ^  (Power)
	StarStar // ** (NonCommutativeMultiply)

	// Relational operators.
	Equal   // ==
	Unequal // !=
	SameQ   // ===
	UnsameQ // =!=
	Less
	Greater
	LessEqual
	GreaterEqual

	// Logical operators.
	AmpAmp   // &&
	PipePipe // ||
	Bang     // ! (Not)

	// Assignment operators.
	SetOp          // =
	SetDelayedOp   // :=
	UpSetOp        // ^=
	UpSetDelayedOp // ^:=
	TagSetOp       // /: ... = ...
	UnsetOp        // =.
	AddToOp        // +=
	SubtractFromOp // -=
	TimesByOp      // *=
	DivideByOp     // /=
	IncrementOp    // ++
	DecrementOp    // --

	// Rule and replacement operators.
	Rule            // ->
	RuleDelayed     // :>
	ReplaceAll      // /.
	ReplaceRepeated // //.

	// Pattern and slot operators.
	Blank             // _
	BlankSequence     // __
	BlankNullSequence // ___
	PatternTest       // ?
	Optional          // : in f[x_:v] position, disambiguated by parser context
	Slot              // #, #1, #name
	SlotSequence      // ##, ##1
	Out               // %, %%, %n

	// Functional and postfix/prefix operators.
	Amp          // & (Function)
	At           // @ (Prefix application)
	SlashAt      // /@ (Map)
	AtAt         // @@ (Apply)
	AtAtAt       // @@@ (Apply at level 1)
	SlashSlashAt // //@ (MapAll)
	Tilde        // ~ (infix function application, ~f~)
	DoubleTilde  // ~~ (StringExpression join)
	SlashSemi    // /; (Condition)

	// String and Span operators.
	StringJoinOp // <>
	SpanOp       // ;; (Span)

	// Postfix apply.
	SlashSlash // // (postfix function application)

	// Association brackets and pattern alternatives.
	AssocOpen  // <|
	AssocClose // |>
	Pipe       // | (Alternatives)

	// Linear syntax and special box markers.
	LinearSyntaxOpen  // \<
	LinearSyntaxClose // \>

	// Synthetic / recovery.
	Synthetic // not produced by the lexer or parser; recovery tokens keep their own Kind and set Token.Synthesized
)

var kindNames = map[Kind]string{
	Illegal: "Illegal", EOF: "EOF",
	Identifier: "Identifier", Integer: "Integer", Real: "Real", String: "String",
	LParen: "LParen", RParen: "RParen", LBracket: "LBracket", RBracket: "RBracket",
	LBrace: "LBrace", RBrace: "RBrace",
	LDoubleBracket: "LDoubleBracket", RDoubleBracket: "RDoubleBracket",
	Comma: "Comma", Semicolon: "Semicolon",
	Backtick: "Backtick", Dot: "Dot", DoubleColon: "DoubleColon", Colon: "Colon",
	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", Caret: "Caret",
	StarStar: "StarStar",
	Equal: "Equal", Unequal: "Unequal", SameQ: "SameQ", UnsameQ: "UnsameQ",
	Less: "Less", Greater: "Greater", LessEqual: "LessEqual", GreaterEqual: "GreaterEqual",
	AmpAmp: "AmpAmp", PipePipe: "PipePipe", Bang: "Bang",
	SetOp: "SetOp", SetDelayedOp: "SetDelayedOp", UpSetOp: "UpSetOp",
	UpSetDelayedOp: "UpSetDelayedOp", TagSetOp: "TagSetOp", UnsetOp: "UnsetOp",
	AddToOp: "AddToOp", SubtractFromOp: "SubtractFromOp", TimesByOp: "TimesByOp",
	DivideByOp: "DivideByOp", IncrementOp: "IncrementOp", DecrementOp: "DecrementOp",
	Rule: "Rule", RuleDelayed: "RuleDelayed", ReplaceAll: "ReplaceAll",
	ReplaceRepeated: "ReplaceRepeated",
	Blank: "Blank", BlankSequence: "BlankSequence", BlankNullSequence: "BlankNullSequence",
	PatternTest: "PatternTest", Optional: "Optional", Slot: "Slot",
	SlotSequence: "SlotSequence", Out: "Out",
	Amp: "Amp", At: "At", SlashAt: "SlashAt", AtAt: "AtAt", AtAtAt: "AtAtAt",
	SlashSlashAt: "SlashSlashAt", Tilde: "Tilde", DoubleTilde: "DoubleTilde",
	SlashSemi: "SlashSemi",
	StringJoinOp: "StringJoinOp", SpanOp: "SpanOp", SlashSlash: "SlashSlash",
	AssocOpen: "AssocOpen", AssocClose: "AssocClose", Pipe: "Pipe",
	LinearSyntaxOpen: "LinearSyntaxOpen", LinearSyntaxClose: "LinearSyntaxClose",
	Synthetic: "Synthetic",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TriviaKind classifies a piece of trivia attached to a token.
// Whitespace, comments, and line continuations survive as first-class
// values rather than being discarded, so a lossless unparse can
// reproduce the source exactly.
type TriviaKind int

const (
	InvalidRunes TriviaKind = iota
	Whitespace
	Newline
	Comment
	LineContinuation
)

func (k TriviaKind) String() string {
	switch k {
	case InvalidRunes:
		return "InvalidRunes"
	case Whitespace:
		return "Whitespace"
	case Newline:
		return "Newline"
	case Comment:
		return "Comment"
	case LineContinuation:
		return "LineContinuation"
	default:
		return fmt.Sprintf("TriviaKind(%d)", int(k))
	}
}

// Trivia is a non-significant run of source text attached to a Token's
// leading or trailing edge.
type Trivia struct {
	Kind TriviaKind
	Span span.Span
}

// Text returns the trivia's source text.
func (t Trivia) Text(src []byte) string {
	return t.Span.Text(src)
}

// Token is one lexical unit: its kind, its span in the source, and the
// trivia immediately before and after it. Tokens borrow their text from
// the source buffer via Span rather than copying it.
type Token struct {
	Kind           Kind
	Span           span.Span
	LeadingTrivia  []Trivia
	TrailingTrivia []Trivia

	// Synthesized is true for tokens the parser inserted during error
	// recovery; such tokens have an empty Span at the point of insertion
	// and never appear in LeadingTrivia/TrailingTrivia.
	Synthesized bool
}

// Text returns the token's own source text, excluding trivia.
func (t *Token) Text(src []byte) string {
	if t == nil {
		panic("assert(token != nil)")
	}
	return t.Span.Text(src)
}

// TextWithTrivia returns the token's text including its leading and
// trailing trivia, i.e. the exact source slice a lossless unparse would
// reproduce for this token.
func (t *Token) TextWithTrivia(src []byte) string {
	if t == nil {
		panic("assert(token != nil)")
	}
	var out []byte
	for _, tr := range t.LeadingTrivia {
		out = append(out, tr.Text(src)...)
	}
	out = append(out, t.Text(src)...)
	for _, tr := range t.TrailingTrivia {
		out = append(out, tr.Text(src)...)
	}
	return string(out)
}
