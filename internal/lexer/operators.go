// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import "github.com/mdhender/wlparse/internal/token"

// operatorTable maps ASCII operator spellings to the token Kind they
// produce. scanOperator tries the longest candidate first so a spelling
// that is a prefix of a longer one (e.g. "/" inside "//.") never steals
// a match it shouldn't.
var operatorTable = map[string]token.Kind{
	// 3-byte spellings.
	"//.": token.ReplaceRepeated,
	"^:=": token.UpSetDelayedOp,
	"===": token.SameQ,
	"=!=": token.UnsameQ,
	"___": token.BlankNullSequence,
	"//@": token.SlashSlashAt,
	"@@@": token.AtAtAt,

	// 2-byte spellings.
	":=": token.SetDelayedOp,
	"==": token.Equal,
	"!=": token.Unequal,
	"<=": token.LessEqual,
	">=": token.GreaterEqual,
	"&&": token.AmpAmp,
	"||": token.PipePipe,
	"->": token.Rule,
	":>": token.RuleDelayed,
	"/.": token.ReplaceAll,
	"+=": token.AddToOp,
	"-=": token.SubtractFromOp,
	"*=": token.TimesByOp,
	"/=": token.DivideByOp,
	"++": token.IncrementOp,
	"--": token.DecrementOp,
	"^=": token.UpSetOp,
	"/:": token.TagSetOp,
	"=.": token.UnsetOp,
	"__": token.BlankSequence,
	"##": token.SlotSequence,
	"**": token.StarStar,
	"<>": token.StringJoinOp,
	";;": token.SpanOp,
	"~~": token.DoubleTilde,
	"/@": token.SlashAt,
	"@@": token.AtAt,
	"//": token.SlashSlash,
	"/;": token.SlashSemi,
	"::": token.DoubleColon,
	"[[": token.LDoubleBracket,
	"]]": token.RDoubleBracket,
	"<|": token.AssocOpen,
	"|>": token.AssocClose,

	// 1-byte spellings.
	"(": token.LParen,
	")": token.RParen,
	"[": token.LBracket,
	"]": token.RBracket,
	"{": token.LBrace,
	"}": token.RBrace,
	",": token.Comma,
	";": token.Semicolon,
	"`": token.Backtick,
	".": token.Dot,
	":": token.Colon,
	"+": token.Plus,
	"-": token.Minus,
	"*": token.Star,
	"/": token.Slash,
	"^": token.Caret,
	"=": token.SetOp,
	"!": token.Bang,
	"<": token.Less,
	">": token.Greater,
	"?": token.PatternTest,
	"&": token.Amp,
	"@": token.At,
	"~": token.Tilde,
	"_": token.Blank,
	"|": token.Pipe,
}

// maxOperatorRunes is the length, in runes, of the longest entry in
// operatorTable. scanOperator never needs to look further ahead than
// this.
const maxOperatorRunes = 3

// namedCharacterOperators maps the code point a \[Name] escape resolves
// to onto the same token Kind its ASCII spelling produces, so
// `a\[Rule]b` tokenizes identically to `a->b`.
var namedCharacterOperators = map[rune]token.Kind{
	0x00D7: token.Star,         // \[Times] same lexical role as *
	0x00F7: token.Slash,        // \[Divide]
	0x2192: token.Rule,         // \[Rule] / \[RightArrow]
	0x29F4: token.RuleDelayed,  // \[RuleDelayed]
	0x2260: token.Unequal,      // \[NotEqual]
	0x2264: token.LessEqual,    // \[LessEqual]
	0x2265: token.GreaterEqual, // \[GreaterEqual]
	0x00AC: token.Bang,         // \[Not]
}
