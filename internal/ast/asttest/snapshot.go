// Copyright (c) 2024 Michael D Henderson. All rights reserved.

//go:build test || !release

// Package asttest mirrors internal/cst/csttest's golden-snapshot
// convention for AST nodes: a plain, comparable Go value in place of
// *ast.Node pointers or raw structs whose big.Int/span fields make test
// failures unreadable.
package asttest

import (
	"fmt"

	"github.com/mdhender/wlparse/internal/ast"
)

// Snap is a recursive, JSON-friendly snapshot of one ast.Node. Spans are
// deliberately omitted, matching csttest.Snap.
type Snap struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Children []Snap `json:"children,omitempty"`
}

// Snapshot builds a Snap tree for n.
func Snapshot(n *ast.Node) Snap {
	if n == nil {
		return Snap{Kind: "nil"}
	}
	s := Snap{Kind: n.Kind.String()}
	switch n.Kind {
	case ast.KindSymbol:
		s.Text = n.Name
	case ast.KindInteger:
		if n.IntValue != nil {
			s.Text = n.IntValue.String()
		}
	case ast.KindReal:
		s.Text = fmt.Sprintf("%g", n.RealValue)
	case ast.KindString:
		s.Text = n.StrValue
	case ast.KindError:
		s.Text = n.Message
		for _, c := range n.Args {
			s.Children = append(s.Children, Snapshot(c))
		}
	case ast.KindCall:
		s.Children = append(s.Children, Snapshot(n.Head))
		for _, a := range n.Args {
			s.Children = append(s.Children, Snapshot(a))
		}
	}
	return s
}

// Sym, Int, and Call are convenience constructors for expected snapshots
// in table-driven tests.
func Sym(name string) Snap { return Snap{Kind: "Symbol", Text: name} }
func Int(text string) Snap { return Snap{Kind: "Integer", Text: text} }
func Str(text string) Snap { return Snap{Kind: "String", Text: text} }

// Call builds the snapshot of a Call node: headName becomes the first
// child (a Symbol), followed by args.
func Call(headName string, args ...Snap) Snap {
	return Snap{Kind: "Call", Children: append([]Snap{Sym(headName)}, args...)}
}
