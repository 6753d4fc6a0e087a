// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ast

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/mdhender/wlparse/internal/chars"
	"github.com/mdhender/wlparse/internal/cst"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
)

// unwrapGroup strips a transparent parenthesized Group so the associative-
// flattening walks below see through `-(a + b)` to the Plus chain inside.
func unwrapGroup(n *cst.Node) *cst.Node {
	for n != nil && n.Kind == cst.KindGroup && n.Op == "Group" && len(n.Children) == 1 {
		n = n.Children[0]
	}
	return n
}

func isOp(n *cst.Node, op string) bool {
	return n != nil && n.Kind == cst.KindOperator && n.Op == op
}

func isCompound(n *cst.Node, op string) bool {
	return n != nil && n.Kind == cst.KindCompound && n.Op == op
}

// flattenSameHead returns n's own argument list if n is a Call headed by
// headName, and []*Node{n} otherwise -- the generic half of associative
// flattening (And, Or, Alternatives, StringJoin, StringExpression),
// separate from Plus/Times which also rewrite unary minus and division
// and so get their own walk below.
func flattenSameHead(n *Node, headName string) []*Node {
	if n != nil && n.Kind == KindCall && n.Head != nil && n.Head.Kind == KindSymbol && n.Head.Name == headName {
		return n.Args
	}
	return []*Node{n}
}

// ---- Plus / Subtract / unary minus ----

// plusTerms collects n's addends after fully distributing Subtract and
// UnaryMinus into signed terms: `a - b` contributes `a` and the negation
// of `b`; `-x` contributes the negation of `x`.
func (b *builder) plusTerms(n *cst.Node) []*Node {
	n = unwrapGroup(n)
	switch {
	case isOp(n, "Plus"):
		return append(b.plusTerms(n.Children[0]), b.plusTerms(n.Children[2])...)
	case isOp(n, "Subtract"):
		return append(b.plusTerms(n.Children[0]), b.negateTerms(n.Children[2])...)
	case isOp(n, "UnaryMinus"):
		return b.negateTerms(n.Children[1])
	case isOp(n, "UnaryPlus"):
		return b.plusTerms(n.Children[1])
	default:
		return []*Node{b.transform(n)}
	}
}

// negateTerms is plusTerms under an enclosing negation: every term it
// produces is the negation of the corresponding plusTerms term.
func (b *builder) negateTerms(n *cst.Node) []*Node {
	n = unwrapGroup(n)
	switch {
	case isOp(n, "Plus"):
		return append(b.negateTerms(n.Children[0]), b.negateTerms(n.Children[2])...)
	case isOp(n, "Subtract"):
		return append(b.negateTerms(n.Children[0]), b.plusTerms(n.Children[2])...)
	case isOp(n, "UnaryMinus"):
		return b.plusTerms(n.Children[1]) // double negative cancels
	case isOp(n, "UnaryPlus"):
		return b.negateTerms(n.Children[1])
	default:
		return []*Node{negateOne(b.transform(n))}
	}
}

// negateOne folds the negation of an already-transformed node into
// Times[-1, x], merging into an existing Times call's argument list
// instead of double-wrapping one that is already a product.
func negateOne(n *Node) *Node {
	if n != nil && n.Kind == KindCall && n.Head != nil && n.Head.Kind == KindSymbol && n.Head.Name == "Times" {
		return &Node{Kind: KindCall, Head: symbolNode("Times"), Args: append([]*Node{integerNode(-1)}, n.Args...), Span: n.Span}
	}
	return &Node{Kind: KindCall, Head: symbolNode("Times"), Args: []*Node{integerNode(-1), n}, Span: n.Span}
}

func isPlusChain(n *cst.Node) bool {
	n = unwrapGroup(n)
	return isOp(n, "Plus") || isOp(n, "Subtract")
}

// ---- Times / Divide ----

// timesFactors collects n's factors, distributing Divide into
// Power[x,-1].
func (b *builder) timesFactors(n *cst.Node) []*Node {
	n = unwrapGroup(n)
	switch {
	case isOp(n, "Times"):
		return append(b.timesFactors(n.Children[0]), b.timesFactors(n.Children[2])...)
	case isOp(n, "Divide"):
		return append(b.timesFactors(n.Children[0]), b.invertFactors(n.Children[2])...)
	default:
		// A Times produced by folding a unary minus into Times[-1, x]
		// always flattens into the surrounding product: -2*3 is
		// Times[-1,2,3], not a nested Times[Times[-1,2],3].
		// QuirkFlattenTimes extends that same flattening to a Times
		// arriving as a literal function-call factor, e.g.
		// `Times[a,b] * c`, which the default behavior keeps nested.
		t := b.transform(n)
		if isSyntheticTimes(n) || b.quirks.Has(QuirkFlattenTimes) {
			return flattenSameHead(t, "Times")
		}
		return []*Node{t}
	}
}

func isSyntheticTimes(n *cst.Node) bool {
	return isOp(n, "UnaryMinus") || isOp(n, "UnaryPlus")
}

// invertFactors is timesFactors under an enclosing reciprocal: `a/(b*c)`
// inverts every factor of the denominator; `a/(b/c)` inverts b but carries
// c back up un-inverted, since dividing by (b/c) multiplies by c/b.
func (b *builder) invertFactors(n *cst.Node) []*Node {
	n = unwrapGroup(n)
	switch {
	case isOp(n, "Times"):
		return append(b.invertFactors(n.Children[0]), b.invertFactors(n.Children[2])...)
	case isOp(n, "Divide"):
		return append(b.invertFactors(n.Children[0]), b.timesFactors(n.Children[2])...)
	default:
		return []*Node{invertOne(b.transform(n))}
	}
}

func invertOne(n *Node) *Node {
	return &Node{Kind: KindCall, Head: symbolNode("Power"), Args: []*Node{n, integerNode(-1)}, Span: n.Span}
}

// ---- Span ----

// collectSpanParts walks a left-nested chain of CST Span operators
// (`;;` is left-associative) back into source order.
func collectSpanParts(n *cst.Node) []*cst.Node {
	if isOp(n, "Span") {
		parts := collectSpanParts(n.Children[0])
		return append(parts, n.Children[2])
	}
	return []*cst.Node{n}
}

// spanNode desugars a;;b;;c (and the partial a;;, ;;b, and bare ;; forms)
// into Span[start, stop, step?]: a missing start defaults to 1, a missing
// stop defaults to All, and a present step is carried through unchanged.
// A step position left empty (`a;;b;;`) is passed through as whatever the
// parser's generic missing-operand recovery produced.
func (b *builder) spanNode(n *cst.Node) *Node {
	parts := collectSpanParts(n)
	args := make([]*Node, 0, len(parts))
	for i, part := range parts {
		switch {
		case i == 0 && isCompound(part, "ImplicitSpanStart"):
			args = append(args, integerNode(1))
		case i == 1 && isCompound(part, "Null"):
			args = append(args, symbolNode("All"))
		default:
			args = append(args, b.transform(part))
		}
	}
	return &Node{Kind: KindCall, Head: symbolNode("Span"), Args: args, Span: n.Span}
}

// ---- number literals ----

// digitValue returns the value of a base-36 digit (0-9, a-z/A-Z), or -1 if
// r isn't one.
func digitValue(r rune) int {
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

// parseNumberLiteral computes a numeric AST literal from a token's raw
// source text. An out-of-range base prefix is rejected by the tokenizer
// before a token ever reaches this pass; the range check here repeats it
// only to guard direct callers (slot/Out suffixes). What genuinely lands
// here is the digit-against-declared-base check (e.g. the 9 in 2^^9),
// which needs the literal's value computation to detect.
func parseNumberLiteral(raw string) (*Node, []diag.Issue) {
	text := raw
	base := 10

	if i := strings.Index(text, "^^"); i >= 0 {
		baseStr := text[:i]
		n, err := strconv.Atoi(baseStr)
		if err != nil || n < 2 || n > 36 {
			return &Node{Kind: KindError, Message: fmt.Sprintf("base out of range: %s", baseStr)},
				[]diag.Issue{{Kind: "ast.number", Severity: diag.Error, Message: fmt.Sprintf("base `%s^^` is out of range (must be 2..36)", baseStr)}}
		}
		base = n
		text = text[i+2:]
	}

	exponent := 0
	if i := strings.Index(text, "*^"); i >= 0 {
		e, _ := strconv.Atoi(text[i+2:])
		exponent = e
		text = text[:i]
	}

	isReal := false
	if i := strings.IndexByte(text, '`'); i >= 0 {
		isReal = true
		text = text[:i]
	}
	if strings.ContainsRune(text, '.') {
		isReal = true
	}
	if exponent != 0 {
		isReal = true
	}

	if !isReal {
		v := new(big.Int)
		if _, ok := v.SetString(text, base); !ok {
			return &Node{Kind: KindError, Message: "malformed integer literal"},
				[]diag.Issue{{Kind: "ast.number", Severity: diag.Error, Message: fmt.Sprintf("malformed integer literal %q", raw)}}
		}
		return &Node{Kind: KindInteger, IntValue: v, Base: base}, nil
	}

	val, ok := parseRealMantissa(text, base)
	if !ok {
		return &Node{Kind: KindError, Message: "malformed real literal"},
			[]diag.Issue{{Kind: "ast.number", Severity: diag.Error, Message: fmt.Sprintf("malformed real literal %q", raw)}}
	}
	val *= math.Pow(float64(base), float64(exponent))
	return &Node{Kind: KindReal, RealValue: val, Base: base}, nil
}

// parseRealMantissa parses "digits" or "digits.digits" in the given base.
// Non-decimal-base reals are an approximation (the fractional part is
// summed as a geometric series in base); this core does not evaluate
// expressions, so the approximation is only ever surfaced back to a caller
// as RealValue, never fed into further arithmetic.
func parseRealMantissa(text string, base int) (float64, bool) {
	intPart, fracPart, hasFrac := text, "", false
	if i := strings.IndexByte(text, '.'); i >= 0 {
		intPart, fracPart, hasFrac = text[:i], text[i+1:], true
	}

	var whole float64
	for _, r := range intPart {
		d := digitValue(r)
		if d < 0 || d >= base {
			return 0, false
		}
		whole = whole*float64(base) + float64(d)
	}
	if !hasFrac {
		return whole, true
	}

	var frac float64
	scale := 1.0 / float64(base)
	for _, r := range fracPart {
		d := digitValue(r)
		if d < 0 || d >= base {
			return 0, false
		}
		frac += float64(d) * scale
		scale /= float64(base)
	}
	return whole + frac, true
}

// decodeStringLiteral resolves the backslash escapes inside a string
// token's raw quoted text using the same character-layer decoder the
// tokenizer's scanner uses to find the closing quote, so escape resolution
// stays in exactly one place (internal/chars) across the whole pipeline.
// tokStart is the token's own start position (covering the opening quote);
// the inner decoder is seeded one byte/char past it, with the column
// advanced by the quote, so any issue it raises lands at its true offset
// in the original source rather than restarting at byte/line/col zero.
func decodeStringLiteral(raw string, tokStart span.Pos, tabWidth int) (string, []diag.Issue) {
	if len(raw) < 1 || raw[0] != '"' {
		return "", nil
	}
	// An unterminated literal's raw text has no closing quote to strip.
	body := raw[1:]
	if strings.HasSuffix(body, `"`) {
		body = body[:len(body)-1]
	}
	inner := []byte(body)
	innerStart := span.Pos{Byte: tokStart.Byte + 1, Char: tokStart.Char + 1, Line: tokStart.Line, Col: tokStart.Col + 1}
	dec := chars.NewDecoderAt(inner, tabWidth, innerStart)
	var sb strings.Builder
	for !dec.AtEOF() {
		cp, _ := dec.Next()
		switch cp.Kind {
		case chars.Normal, chars.Special, chars.LinearSyntax:
			sb.WriteRune(cp.R)
		case chars.Unsafe, chars.EOF:
			// already flagged by dec.Issues(); nothing to append.
		}
	}
	return sb.String(), dec.Issues()
}

// slotSuffix splits a #/##/% token's raw text into its sigil run and the
// trailing digits or name.
func slotSuffix(raw string, sigil byte) (sigilCount int, suffix string) {
	i := 0
	for i < len(raw) && raw[i] == sigil {
		i++
	}
	return i, raw[i:]
}
