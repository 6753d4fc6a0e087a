// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ast

import (
	"math/big"

	"github.com/mdhender/wlparse/internal/span"
)

// Kind tags the variant an AST Node carries: a literal (symbol, integer,
// real, string), a call with a head and an ordered argument sequence, or
// an error.
type Kind int

const (
	KindSymbol Kind = iota
	KindInteger
	KindReal
	KindString
	KindCall
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindCall:
		return "Call"
	case KindError:
		return "Error"
	default:
		return "Kind(?)"
	}
}

// Node is one AST node. Which fields
// are meaningful depends on Kind: Name for KindSymbol, IntValue/Base for
// KindInteger, RealValue for KindReal, StrValue for KindString, Head/Args
// for KindCall, Message for KindError.
type Node struct {
	Kind Kind
	Span span.Span

	Name string // KindSymbol

	IntValue *big.Int // KindInteger
	Base     int      // KindInteger, 2..36; 10 unless an explicit n^^digits prefix was used

	RealValue float64 // KindReal

	StrValue string // KindString, escapes already resolved

	Head *Node   // KindCall
	Args []*Node // KindCall
	// ArgSpans records each argument's own span alongside Args, kept
	// parallel to Args rather than folded into Node.Span since a
	// rewritten argument (e.g. the synthesized -1 in Times[-1, x]) has no
	// span of its own.
	ArgSpans []span.Span

	Message string // KindError
}

// Tokens-equivalent leaf walk isn't meaningful for an AST (trivia and
// punctuation are already gone); Leaves returns every KindSymbol/KindInteger
// /KindReal/KindString node reachable from n, used by tests that want to
// check which literals survived a transform without asserting full shape.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindSymbol, KindInteger, KindReal, KindString:
		return []*Node{n}
	case KindCall:
		var out []*Node
		out = append(out, n.Head.Leaves()...)
		for _, a := range n.Args {
			out = append(out, a.Leaves()...)
		}
		return out
	default:
		return nil
	}
}

func symbolNode(name string) *Node { return &Node{Kind: KindSymbol, Name: name} }

func integerNode(v int64) *Node { return &Node{Kind: KindInteger, IntValue: big.NewInt(v), Base: 10} }

func callNode(headName string, args ...*Node) *Node {
	return &Node{Kind: KindCall, Head: symbolNode(headName), Args: args}
}
