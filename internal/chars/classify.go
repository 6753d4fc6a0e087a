// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chars

import "unicode"

// The classification sets below are compile-time constants the tokenizer
// dispatches on (punctuation, letter-like, whitespace, newline,
// uninterpretable), not something this package generates. They are a
// representative, hand-maintained subset of the full Unicode-derived
// tables -- large enough to drive every scanner, small enough to read in
// one sitting.
//
// Runes outside printable ASCII are built from hex code points via
// rune(0x..) rather than written as literal source bytes, since several
// of them (NEL, LS, PS, BOM, NUL, DEL) are otherwise invisible or unsafe
// to carry as raw bytes in a text file.

const (
	runeNEL              = rune(0x0085) // next line
	runeLS               = rune(0x2028) // line separator
	runePS               = rune(0x2029) // paragraph separator
	runeNBSP             = rune(0x00A0) // no-break space
	runeOghamSpaceMark   = rune(0x1680)
	runeEnQuad           = rune(0x2000)
	runeEmQuad           = rune(0x2001)
	runeEnSpace          = rune(0x2002)
	runeEmSpace          = rune(0x2003)
	runeThreePerEmSpace  = rune(0x2004)
	runeFourPerEmSpace   = rune(0x2005)
	runeSixPerEmSpace    = rune(0x2006)
	runeFigureSpace      = rune(0x2007)
	runePunctuationSpace = rune(0x2008)
	runeThinSpace        = rune(0x2009)
	runeHairSpace        = rune(0x200A)
	runeNarrowNBSP       = rune(0x202F)
	runeMediumMathSpace  = rune(0x205F)
	runeIdeographicSpace = rune(0x3000)
	runeBOM              = rune(0xFEFF)
	runeReplacementChar  = rune(0xFFFD)
	runeNUL              = rune(0x0000)
	runeDEL              = rune(0x007F)
)

// newlineRunes are the recognized line terminators: LF, CR (alone; CRLF
// is handled specially in Decoder.advance as one break), NEL, LS, PS.
// CRLF is a sequence, not a distinct rune, so classification works
// rune-by-rune and the decoder folds CRLF into one line break during
// advance.
var newlineRunes = map[rune]bool{
	'\n':    true, // LF
	'\r':    true, // CR
	runeNEL: true,
	runeLS:  true,
	runePS:  true,
}

// IsNewline reports whether r is a recognized newline rune. It does not
// special-case CRLF; callers that need CRLF folded into a single break
// should use Decoder.advance, not this predicate directly.
func IsNewline(r rune) bool {
	return newlineRunes[r]
}

// whitespaceRunes holds the common intra-line whitespace the tokenizer
// coalesces into a single trivia token. Newlines are excluded: they are
// their own trivia kind (Newline), never folded into whitespace runs.
var whitespaceRunes = map[rune]bool{
	' ':                  true,
	'\t':                 true,
	runeNBSP:             true,
	runeOghamSpaceMark:   true,
	runeEnQuad:           true,
	runeEmQuad:           true,
	runeEnSpace:          true,
	runeEmSpace:          true,
	runeThreePerEmSpace:  true,
	runeFourPerEmSpace:   true,
	runeSixPerEmSpace:    true,
	runeFigureSpace:      true,
	runePunctuationSpace: true,
	runeThinSpace:        true,
	runeHairSpace:        true,
	runeNarrowNBSP:       true,
	runeMediumMathSpace:  true,
	runeIdeographicSpace: true,
}

// IsWhitespace reports whether r is intra-line whitespace (not a newline).
func IsWhitespace(r rune) bool {
	if IsNewline(r) {
		return false
	}
	if whitespaceRunes[r] {
		return true
	}
	return unicode.IsSpace(r)
}

// uninterpretableRunes are code points that can appear in a byte stream but
// can never be part of a faithfully-decoded token: a stray byte-order
// mark, the Unicode replacement character, NUL, and DEL. The decoder
// emits an encoding Issue and treats these as Unsafe.
var uninterpretableRunes = map[rune]bool{
	runeBOM:             true,
	runeReplacementChar: true,
	runeNUL:             true,
	runeDEL:             true,
}

// IsUninterpretable reports whether r is one of the small set of code
// points the decoder refuses to treat as ordinary text.
func IsUninterpretable(r rune) bool {
	return uninterpretableRunes[r]
}

// IsLetterLike reports whether r can start or continue a symbol name.
// This is broader than unicode.IsLetter: Wolfram Language symbol names
// also admit the dollar sign as a name constituent. Underscore is not a
// name constituent; it spells Blank and is scanned as an operator.
func IsLetterLike(r rune) bool {
	if r == '$' {
		return true
	}
	return unicode.IsLetter(r)
}

// IsDigit reports whether r is an ASCII decimal digit. Number literals are
// ASCII-only at the lexical level; Unicode digit forms are not accepted as
// numeric literals.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsBaseDigit reports whether r is a valid digit in the given base
// (2..36), using 0-9 then A-Z/a-z as the extended digit alphabet that
// base-prefixed numbers (n^^digits) use.
func IsBaseDigit(r rune, base int) bool {
	v := baseDigitValue(r)
	return v >= 0 && v < base
}

// baseDigitValue returns the numeric value of r as a base-36 digit, or -1
// if r is not an ASCII alphanumeric character.
func baseDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// BaseDigitValue exposes baseDigitValue to the number scanner.
func BaseDigitValue(r rune) int { return baseDigitValue(r) }

// IsHexDigit reports whether r is an ASCII hex digit, used by the three
// hex-escape forms (short, long, and byte) in the character layer's
// escape grammar.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsOctalDigit reports whether r is an ASCII octal digit, used by the
// three-digit octal escape.
func IsOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// punctuationRunes are single-rune operators and delimiters the
// tokenizer's operator scanner recognizes outright, without needing the
// full longest-match walk. The operator table in internal/lexer still
// owns multi-rune spellings; this set just lets the character layer's
// dispatch answer "is this punctuation" in O(1).
var punctuationRunes = map[rune]bool{}

func init() {
	for _, r := range []rune("()[]{}<>,;:=+-*/\\^!?&|@.~%#'\"") {
		punctuationRunes[r] = true
	}
}

// IsPunctuation reports whether r is one of the ASCII punctuation
// characters that can begin an operator or grouping token.
func IsPunctuation(r rune) bool {
	return punctuationRunes[r]
}
