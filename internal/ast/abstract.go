// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ast

import (
	"github.com/mdhender/wlparse/internal/chars"
	"github.com/mdhender/wlparse/internal/cst"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// builder carries the state the abstraction pass threads through every
// transform call: the source bytes (a leaf token only has a span, not its
// own text), the quirks selected for this run, and the running issue list.
type builder struct {
	src    []byte
	quirks Quirks
	issues []diag.Issue
}

// FromCST runs the abstraction pass over a parsed CST,
// producing the normalized AST plus any issues the pass itself raises
// (number/string literal errors; CST-level issues are the caller's own
// concern and are not duplicated here).
func FromCST(root *cst.Node, src []byte, q Quirks) (*Node, []diag.Issue) {
	b := &builder{src: src, quirks: q}
	out := b.transform(root)
	return out, b.issues
}

// FromCSTSequence maps FromCST over a sequence of independently-parsed
// top-level CST nodes (paired with cst.ParseSequence), concatenating
// each element's issues.
func FromCSTSequence(nodes []*cst.Node, src []byte, q Quirks) ([]*Node, []diag.Issue) {
	out := make([]*Node, 0, len(nodes))
	var issues []diag.Issue
	for _, n := range nodes {
		node, iss := FromCST(n, src, q)
		out = append(out, node)
		issues = append(issues, iss...)
	}
	return out, issues
}

func (b *builder) issue(sev diag.Severity, kind diag.Kind, msg string, sp span.Span) {
	b.issues = append(b.issues, diag.Issue{Kind: kind, Severity: sev, Message: msg, Span: sp})
}

func (b *builder) transform(n *cst.Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case cst.KindToken:
		return b.literal(n)
	case cst.KindError:
		return b.errorNode(n)
	case cst.KindGroup:
		return b.group(n)
	case cst.KindCall:
		return b.call(n)
	case cst.KindCompound:
		return b.compound(n)
	case cst.KindOperator:
		return b.operator(n)
	default:
		b.issue(diag.Fatal, "ast.abstract", "unknown CST node kind", n.Span)
		return &Node{Kind: KindError, Message: "unknown CST node kind", Span: n.Span}
	}
}

// errorNode carries a CST error node through to the AST unchanged,
// without elevating its severity: its presence is reported once, at the
// CST layer, and the AST pass does not re-raise it.
func (b *builder) errorNode(n *cst.Node) *Node {
	var args []*Node
	for _, c := range n.Children {
		args = append(args, b.transform(c))
	}
	return &Node{Kind: KindError, Message: n.Message, Span: n.Span, Args: args}
}

func (b *builder) literal(n *cst.Node) *Node {
	tok := n.Tok
	if tok == nil {
		return &Node{Kind: KindError, Message: "missing token", Span: n.Span}
	}
	text := tok.Text(b.src)
	switch tok.Kind {
	case token.Identifier:
		return &Node{Kind: KindSymbol, Name: text, Span: n.Span}
	case token.Integer, token.Real:
		lit, issues := parseNumberLiteral(text)
		lit.Span = n.Span
		for _, iss := range issues {
			iss.Span = n.Span
			b.issues = append(b.issues, iss)
		}
		return lit
	case token.String:
		val, issues := decodeStringLiteral(text, n.Span.Start, chars.DefaultTabWidth)
		b.issues = append(b.issues, issues...)
		return &Node{Kind: KindString, StrValue: val, Span: n.Span}
	case token.Slot:
		_, suffix := slotSuffix(text, '#')
		return b.slotNode("Slot", suffix, n.Span)
	case token.SlotSequence:
		_, suffix := slotSuffix(text, '#')
		return b.slotNode("SlotSequence", suffix, n.Span)
	case token.Out:
		count, suffix := slotSuffix(text, '%')
		return b.outNode(count, suffix, n.Span)
	default:
		return &Node{Kind: KindSymbol, Name: text, Span: n.Span}
	}
}

// slotNode converts a #/##/#name/#2/##2 token into Slot[1]/SlotSequence[1]/
// Slot["name"]/Slot[2]/SlotSequence[2] form.
func (b *builder) slotNode(head, suffix string, sp span.Span) *Node {
	if suffix == "" {
		// Bare # and ## address the first argument.
		return &Node{Kind: KindCall, Head: symbolNode(head), Args: []*Node{integerNode(1)}, Span: sp}
	}
	if n, issues := parseNumberLiteral(suffix); len(issues) == 0 {
		return &Node{Kind: KindCall, Head: symbolNode(head), Args: []*Node{n}, Span: sp}
	}
	return &Node{Kind: KindCall, Head: symbolNode(head), Args: []*Node{{Kind: KindString, StrValue: suffix}}, Span: sp}
}

// outNode converts %, %%, %%%, or %n into Out[]/Out[-2]/Out[-3]/Out[n].
func (b *builder) outNode(percentCount int, suffix string, sp span.Span) *Node {
	if suffix != "" {
		if n, issues := parseNumberLiteral(suffix); len(issues) == 0 {
			return &Node{Kind: KindCall, Head: symbolNode("Out"), Args: []*Node{n}, Span: sp}
		}
	}
	if percentCount <= 1 {
		return &Node{Kind: KindCall, Head: symbolNode("Out"), Span: sp}
	}
	return &Node{Kind: KindCall, Head: symbolNode("Out"), Args: []*Node{integerNode(int64(-percentCount))}, Span: sp}
}

func (b *builder) group(n *cst.Node) *Node {
	switch n.Op {
	case "Group":
		if len(n.Children) == 0 {
			return &Node{Kind: KindSymbol, Name: "Null", Span: n.Span}
		}
		return b.transform(n.Children[0])
	case "List":
		args := make([]*Node, 0, len(n.Children))
		for _, c := range n.Children {
			args = append(args, b.transform(c))
		}
		return &Node{Kind: KindCall, Head: symbolNode("List"), Args: args, Span: n.Span}
	case "Association":
		args := make([]*Node, 0, len(n.Children))
		for _, c := range n.Children {
			args = append(args, b.transform(c))
		}
		if b.quirks.Has(QuirkOldAssociation) {
			args = flattenRulePairs(args)
		}
		return &Node{Kind: KindCall, Head: symbolNode("Association"), Args: args, Span: n.Span}
	case "LinearSyntaxBox":
		var sb []byte
		for _, c := range n.Children {
			if c.Kind == cst.KindToken && c.Tok != nil {
				sb = append(sb, c.Tok.Text(b.src)...)
			}
		}
		return &Node{Kind: KindCall, Head: symbolNode("LinearSyntax"), Args: []*Node{{Kind: KindString, StrValue: string(sb)}}, Span: n.Span}
	default:
		b.issue(diag.Fatal, "ast.abstract", "unknown group tag "+n.Op, n.Span)
		return &Node{Kind: KindError, Message: "unknown group tag " + n.Op, Span: n.Span}
	}
}

// flattenRulePairs implements QuirkOldAssociation: every Rule[key,value]
// item is exploded in place into its two arguments, matching the legacy
// flat-arglist <|k1,v1,k2,v2|> shape instead of a list of rule pairs.
func flattenRulePairs(items []*Node) []*Node {
	out := make([]*Node, 0, len(items)*2)
	for _, it := range items {
		if it != nil && it.Kind == KindCall && it.Head != nil && it.Head.Kind == KindSymbol && it.Head.Name == "Rule" && len(it.Args) == 2 {
			out = append(out, it.Args[0], it.Args[1])
			continue
		}
		out = append(out, it)
	}
	return out
}

func (b *builder) call(n *cst.Node) *Node {
	head := b.transform(n.Children[0])
	args := make([]*Node, 0, len(n.Children)-1)
	spans := make([]span.Span, 0, len(n.Children)-1)
	for _, c := range n.Children[1:] {
		args = append(args, b.transform(c))
		spans = append(spans, c.Span)
	}
	if n.Op == "Part" {
		return &Node{Kind: KindCall, Head: symbolNode("Part"), Args: append([]*Node{head}, args...), Span: n.Span}
	}
	return &Node{Kind: KindCall, Head: head, Args: args, ArgSpans: spans, Span: n.Span}
}

func (b *builder) compound(n *cst.Node) *Node {
	switch n.Op {
	case "Null", "NullSlot":
		return &Node{Kind: KindSymbol, Name: "Null", Span: n.Span}
	case "Blank", "BlankSequence", "BlankNullSequence":
		if len(n.Children) == 2 {
			head := b.transform(n.Children[1])
			return &Node{Kind: KindCall, Head: symbolNode(n.Op), Args: []*Node{head}, Span: n.Span}
		}
		return &Node{Kind: KindCall, Head: symbolNode(n.Op), Span: n.Span}
	case "Pattern":
		name := b.transform(n.Children[0])
		blank := b.transform(n.Children[1])
		return &Node{Kind: KindCall, Head: symbolNode("Pattern"), Args: []*Node{name, blank}, Span: n.Span}
	case "MessageName":
		head := b.transform(n.Children[0])
		tag := b.transform(n.Children[2])
		return &Node{Kind: KindCall, Head: symbolNode("MessageName"), Args: []*Node{head, tag}, Span: n.Span}
	case "ImplicitSpanStart":
		// only ever consumed directly by spanNode; reaching transform()
		// means a `;;` sentinel escaped its Span context (e.g. used bare
		// where no Span operator followed). Treat as Integer 1, its
		// intended value, rather than raising a fatal issue.
		return integerNode(1)
	default:
		b.issue(diag.Fatal, "ast.abstract", "unknown compound tag "+n.Op, n.Span)
		return &Node{Kind: KindError, Message: "unknown compound tag " + n.Op, Span: n.Span}
	}
}

func (b *builder) operator(n *cst.Node) *Node {
	switch n.Op {
	case "CompoundExpression":
		return b.flattenChain(n, "CompoundExpression")
	case "Plus", "Subtract":
		return &Node{Kind: KindCall, Head: symbolNode("Plus"), Args: b.plusTerms(n), Span: n.Span}
	case "Times", "Divide":
		return &Node{Kind: KindCall, Head: symbolNode("Times"), Args: b.timesFactors(n), Span: n.Span}
	case "UnaryMinus":
		operand := n.Children[1]
		if isPlusChain(operand) {
			return &Node{Kind: KindCall, Head: symbolNode("Plus"), Args: b.negateTerms(operand), Span: n.Span}
		}
		return negateOneSpan(negateOne(b.transform(unwrapGroup(operand))), n.Span)
	case "UnaryPlus":
		return b.transform(unwrapGroup(n.Children[1]))
	case "Not":
		// Prefix form: children are (operator token, operand).
		operand := b.transform(n.Children[1])
		return &Node{Kind: KindCall, Head: symbolNode("Not"), Args: []*Node{operand}, Span: n.Span}
	case "Span":
		return b.spanNode(n)
	case "And", "Or", "Alternatives", "StringJoin", "StringExpression":
		if n.Op == "Alternatives" && b.quirks.Has(QuirkInfixBinaryPipe) {
			return callNodeSpan(n.Op, n.Span, b.transform(n.Children[0]), b.transform(n.Children[2]))
		}
		left := b.transform(n.Children[0])
		right := b.transform(n.Children[2])
		args := append(flattenSameHead(left, n.Op), flattenSameHead(right, n.Op)...)
		return &Node{Kind: KindCall, Head: symbolNode(n.Op), Args: args, Span: n.Span}
	case "ApplyPostfix":
		left := b.transform(n.Children[0])
		right := b.transform(n.Children[2])
		return &Node{Kind: KindCall, Head: right, Args: []*Node{left}, Span: n.Span}
	case "Prefix":
		left := b.transform(n.Children[0])
		right := b.transform(n.Children[2])
		if b.quirks.Has(QuirkInfixBinaryAt) {
			return callNodeSpan("At", n.Span, left, right)
		}
		return &Node{Kind: KindCall, Head: left, Args: []*Node{right}, Span: n.Span}
	case "Factorial", "Increment", "Decrement", "Function":
		// Postfix operators: parsePostfixOp builds a 2-child node (operand,
		// operator token), unlike every infix form's 3-child (left, token,
		// right) shape.
		operand := b.transform(n.Children[0])
		return &Node{Kind: KindCall, Head: symbolNode(n.Op), Args: []*Node{operand}, Span: n.Span}
	default:
		left := b.transform(n.Children[0])
		right := b.transform(n.Children[2])
		return callNodeSpan(n.Op, n.Span, left, right)
	}
}

// flattenChain generically flattens a left-nested binary chain (only
// CompoundExpression uses this directly; Plus/Times have their own signed
// /inverted walks above).
func (b *builder) flattenChain(n *cst.Node, headName string) *Node {
	var collect func(n *cst.Node) []*Node
	collect = func(n *cst.Node) []*Node {
		if isOp(n, headName) {
			return append(collect(n.Children[0]), collect(n.Children[2])...)
		}
		return []*Node{b.transform(n)}
	}
	return &Node{Kind: KindCall, Head: symbolNode(headName), Args: collect(n), Span: n.Span}
}

func callNodeSpan(headName string, sp span.Span, args ...*Node) *Node {
	return &Node{Kind: KindCall, Head: symbolNode(headName), Args: args, Span: sp}
}

func negateOneSpan(n *Node, sp span.Span) *Node {
	n.Span = sp
	return n
}
