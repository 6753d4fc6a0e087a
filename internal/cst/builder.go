// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cst

import (
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// coverTok extends sp to also cover tok's span.
func coverTok(sp span.Span, tok *token.Token) span.Span {
	if tok == nil {
		return sp
	}
	return span.Cover(sp, tok.Span)
}

// Builder is the node-constructor protocol: a small set of operations
// the parser calls instead of constructing Node values by hand, so an
// alternate instantiation (a counting builder, a quiet builder that
// discards spans to save memory) can be dropped in without touching the
// Pratt driver itself. TreeBuilder below is the only instantiation this
// module exercises: the root package always parses to a CST and
// transforms it to an AST as a second, independent pass
// (internal/ast.FromCST) rather than threading a second generic builder
// through the parser.
type Builder interface {
	Token(tok *token.Token) *Node
	Operator(op string, children ...*Node) *Node
	Call(head *Node, openTok *token.Token, args []*Node, seps []*token.Token, closeTok *token.Token, op string) *Node
	Group(openTok *token.Token, inner []*Node, seps []*token.Token, closeTok *token.Token, op string) *Node
	Compound(op string, children ...*Node) *Node
	Error(message string, children ...*Node) *Node
}

// TreeBuilder builds *Node values directly; it is the only Builder this
// module instantiates.
type TreeBuilder struct{}

func (TreeBuilder) Token(tok *token.Token) *Node {
	n := &Node{Kind: KindToken, Tok: tok}
	if tok != nil {
		n.Span = tok.Span
	}
	return n
}

func (TreeBuilder) Operator(op string, children ...*Node) *Node {
	n := &Node{Kind: KindOperator, Op: op, Children: children}
	n.Span = cover(children...)
	return n
}

func (TreeBuilder) Call(head *Node, openTok *token.Token, args []*Node, seps []*token.Token, closeTok *token.Token, op string) *Node {
	children := append([]*Node{head}, args...)
	n := &Node{Kind: KindCall, Op: op, Children: children, Open: openTok, Close: closeTok, Seps: seps}
	n.Span = cover(children...)
	n.Span = coverTok(n.Span, openTok)
	n.Span = coverTok(n.Span, closeTok)
	return n
}

func (TreeBuilder) Group(openTok *token.Token, inner []*Node, seps []*token.Token, closeTok *token.Token, op string) *Node {
	n := &Node{Kind: KindGroup, Op: op, Children: inner, Open: openTok, Close: closeTok, Seps: seps}
	n.Span = cover(inner...)
	n.Span = coverTok(n.Span, openTok)
	n.Span = coverTok(n.Span, closeTok)
	return n
}

func (TreeBuilder) Compound(op string, children ...*Node) *Node {
	n := &Node{Kind: KindCompound, Op: op, Children: children}
	n.Span = cover(children...)
	return n
}

func (TreeBuilder) Error(message string, children ...*Node) *Node {
	n := &Node{Kind: KindError, Op: "Error", Children: children, Message: message}
	n.Span = cover(children...)
	return n
}
