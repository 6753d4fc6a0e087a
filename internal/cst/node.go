// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cst

import (
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// Kind classifies a Node. The CST is a tagged variant over a single
// token, an operator application, a call, a group, a compound token
// cluster, and a syntax-error node; prefix/infix/postfix/ternary
// applications fold into one KindOperator case distinguished by Node.Op
// and the number of Children rather than one Go type per shape.
type Kind int

const (
	KindToken    Kind = iota // leaf wrapping exactly one significant token
	KindOperator             // prefix/infix/postfix/ternary application; Op names the operator
	KindCall                 // head[args] or head[[args]] (Part)
	KindGroup                // (expr), {list}, <|assoc|>
	KindCompound             // pattern/slot/message-name token clusters
	KindError                // a syntax-error node inserted during recovery
)

func (k Kind) String() string {
	switch k {
	case KindToken:
		return "Token"
	case KindOperator:
		return "Operator"
	case KindCall:
		return "Call"
	case KindGroup:
		return "Group"
	case KindCompound:
		return "Compound"
	case KindError:
		return "Error"
	default:
		return "Kind(?)"
	}
}

// Node is one CST node. Every node carries an operator tag (empty for
// KindToken) and an ordered list of children (empty for KindToken);
// Node.Span is always exactly the union of the children's spans plus any
// bracketing tokens, computed once at construction time by the builder
// rather than recomputed on every access.
type Node struct {
	Kind     Kind
	Op       string // e.g. "Plus", "Rule", "Call", "Group", "Pattern", "CompoundExpression"
	Tok      *token.Token
	Children []*Node
	Span     span.Span

	// Open/Close hold the bracketing tokens of a KindCall or KindGroup
	// node, and Seps the separator tokens between its Children, so the
	// tree remains lossless: concatenating every reachable token's
	// TextWithTrivia reproduces the parsed input exactly. They are kept
	// out of Children so consumers can index arguments positionally.
	Open  *token.Token
	Close *token.Token
	Seps  []*token.Token

	// Message is set on KindError nodes to the human-readable reason
	// parsing could not continue at this point; it duplicates the text of
	// the diag.Issue recorded for the same span so a tree walker doesn't
	// need the side-channel issue list to explain an error node.
	Message string
}

// Tokens yields every token.Token reachable from n, in source order,
// including brackets and separators nested arbitrarily deep inside
// operator/call/group children: walking Tokens and concatenating
// TextWithTrivia reproduces the parsed input byte-for-byte.
func (n *Node) Tokens() []*token.Token {
	if n == nil {
		return nil
	}
	if n.Kind == KindToken {
		if n.Tok == nil {
			return nil
		}
		return []*token.Token{n.Tok}
	}
	var out []*token.Token
	elems := n.Children
	if n.Kind == KindCall && len(elems) > 0 {
		out = append(out, elems[0].Tokens()...)
		elems = elems[1:]
	}
	if n.Open != nil {
		out = append(out, n.Open)
	}
	for i, c := range elems {
		out = append(out, c.Tokens()...)
		if i < len(n.Seps) {
			out = append(out, n.Seps[i])
		}
	}
	if n.Close != nil {
		out = append(out, n.Close)
	}
	return out
}

// FirstToken and LastToken return the leftmost/rightmost token under n;
// for a call or group that is its exact bracketing token.
func (n *Node) FirstToken() *token.Token {
	toks := n.Tokens()
	if len(toks) == 0 {
		return nil
	}
	return toks[0]
}

func (n *Node) LastToken() *token.Token {
	toks := n.Tokens()
	if len(toks) == 0 {
		return nil
	}
	return toks[len(toks)-1]
}

// cover folds span.Cover across a node's children and assigns the result
// to n.Span. Called once by every builder method after a node's children
// are finalized.
func cover(children ...*Node) span.Span {
	var sp span.Span
	for _, c := range children {
		if c == nil {
			continue
		}
		sp = span.Cover(sp, c.Span)
	}
	return sp
}
