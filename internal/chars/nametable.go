// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package chars

// namedCharacters maps a \[Name] escape's name to the code point it
// resolves to. The full named-character table runs to roughly 1100
// entries and is external input, not something the parser core derives;
// this is a representative subset -- the Greek letters, the operator and
// relation glyphs, and the structural markers -- not a transcription of
// the complete table. Names are looked up case-sensitively.
var namedCharacters = map[string]rune{
	// Greek letters.
	"Alpha": rune(0x03B1), "Beta": rune(0x03B2), "Gamma": rune(0x03B3),
	"Delta": rune(0x03B4), "Epsilon": rune(0x03F5), "Zeta": rune(0x03B6),
	"Eta": rune(0x03B7), "Theta": rune(0x03B8), "Iota": rune(0x03B9),
	"Kappa": rune(0x03BA), "Lambda": rune(0x03BB), "Mu": rune(0x03BC),
	"Nu": rune(0x03BD), "Xi": rune(0x03BE), "Omicron": rune(0x03BF),
	"Pi": rune(0x03C0), "Rho": rune(0x03C1), "Sigma": rune(0x03C3),
	"Tau": rune(0x03C4), "Upsilon": rune(0x03C5), "Phi": rune(0x03D5),
	"Chi": rune(0x03C7), "Psi": rune(0x03C8), "Omega": rune(0x03C9),
	"CapitalAlpha": rune(0x0391), "CapitalDelta": rune(0x0394),
	"CapitalGamma": rune(0x0393), "CapitalLambda": rune(0x039B),
	"CapitalOmega": rune(0x03A9), "CapitalPhi": rune(0x03A6),
	"CapitalPi": rune(0x03A0), "CapitalPsi": rune(0x03A8),
	"CapitalSigma": rune(0x03A3), "CapitalTheta": rune(0x0398),
	"CapitalUpsilon": rune(0x03A5), "CapitalXi": rune(0x039E),

	// Relational and logical operators.
	"Equal": rune(0x003D), "NotEqual": rune(0x2260),
	"LessEqual": rune(0x2264), "GreaterEqual": rune(0x2265),
	"LessLess": rune(0x226A), "GreaterGreater": rune(0x226B),
	"Element": rune(0x2208), "NotElement": rune(0x2209),
	"ForAll": rune(0x2200), "Exists": rune(0x2203), "NotExists": rune(0x2204),
	"And": rune(0x2227), "Or": rune(0x2228), "Not": rune(0x00AC),
	"Xor": rune(0x22BB), "Nand": rune(0x22BC), "Nor": rune(0x22BD),
	"Implies": rune(0x21D2), "Equivalent": rune(0x29E6),
	"Congruent": rune(0x2261), "TildeEqual": rune(0x2245),
	"Proportional": rune(0x221D), "SubsetEqual": rune(0x2286),
	"Union": rune(0x22C3), "Intersection": rune(0x22C2),

	// Arithmetic and structural operators.
	"Times": rune(0x00D7), "Divide": rune(0x00F7), "PlusMinus": rune(0x00B1),
	"MinusPlus": rune(0x2213), "Cross": rune(0x2A2F), "Dot": rune(0x00B7),
	"CircleTimes": rune(0x2297), "CirclePlus": rune(0x2295),
	"CircleMinus": rune(0x2296), "SmallCircle": rune(0x2218),
	"Square": rune(0x25A1), "Diamond": rune(0x22C4), "Star": rune(0x22C6),
	"Infinity": rune(0x221E), "Degree": rune(0x00B0),
	"ImaginaryI": rune(0x2148), "ImaginaryJ": rune(0x2149),
	"ExponentialE": rune(0x2147), "DifferentialD": rune(0x2146),
	"PartialD": rune(0x2202), "Del": rune(0x2207),
	"Sum": rune(0x2211), "Product": rune(0x220F), "Integral": rune(0x222B),
	"ContourIntegral": rune(0x222E),
	"Transpose": rune(0x1D40), "Conjugate": rune(0x002A),
	"ConjugateTranspose": rune(0x2020), "HermitianConjugate": rune(0x1D40),

	// Arrows.
	"RightArrow": rune(0x2192), "LeftArrow": rune(0x2190),
	"UpArrow": rune(0x2191), "DownArrow": rune(0x2193),
	"LeftRightArrow": rune(0x2194), "DoubleRightArrow": rune(0x21D2),
	"DoubleLeftArrow": rune(0x21D0), "DoubleLeftRightArrow": rune(0x21D4),
	"LongRightArrow": rune(0x27F6), "RightArrowLeftArrow": rune(0x21C4),
	"Rule": rune(0x2192), "RuleDelayed": rune(0x29F4),
	"Function": rune(0x0026), "Therefore": rune(0x2234), "Because": rune(0x2235),

	// Invisible and structural markers used inside parsed expressions.
	"InvisibleTimes":        rune(0x2062),
	"InvisibleSpace":        rune(0x200B),
	"InvisibleComma":        rune(0x2063),
	"InvisibleApplication":  rune(0x2061),
	"AutoSpace":             rune(0x00A0),
	"NoBreak":               rune(0x2060),
	"RawSpace":              rune(0x0020),
	"IndentingNewLine":      rune(0x2063),
	"ContinuationNewLine":   rune(0x00AC),
	"Continuation":          rune(0x0020),
	"SpanFromLeft":          rune(0xF3A1),
	"SpanFromAbove":         rune(0xF3A2),
	"SpanFromBoth":          rune(0xF3A3),
	"Placeholder":           rune(0x25A1),
	"SelectionPlaceholder":  rune(0x2588),
	"NewLine":               rune(0x000A),
	"AliasDelimiter":        rune(0x0021),
	"OpenCurlyQuote":        rune(0x201C),
	"CloseCurlyQuote":       rune(0x201D),
	"OpenCurlyDoubleQuote":  rune(0x201C),
	"CloseCurlyDoubleQuote": rune(0x201D),
}

// NamedCharacter looks up a \[Name] escape by its name, returning the
// resolved code point and true on success.
func NamedCharacter(name string) (rune, bool) {
	r, ok := namedCharacters[name]
	return r, ok
}

// NamedCharacterCount returns the number of names the table carries.
// Exposed for tests that check the table is non-trivially populated
// without hard-coding its exact size.
func NamedCharacterCount() int {
	return len(namedCharacters)
}
