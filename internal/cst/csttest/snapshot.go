// Copyright (c) 2024 Michael D Henderson. All rights reserved.

//go:build test || !release

// Package csttest turns a *cst.Node into a compact, comparable snapshot
// for golden tests, marshaling trees into plain Go values rather than
// comparing *cst.Node pointers directly (which always differ) or raw
// structs (whose Span fields make failures unreadable). Kept lightweight
// and test-only, gated by a build tag so it never ships in a release
// binary.
package csttest

import "github.com/mdhender/wlparse/internal/cst"

// Snap is a recursive, JSON-friendly snapshot of one cst.Node. Two trees
// compare equal under go-test/deep.Equal iff they have the same shape,
// operator tags, and leaf text -- byte offsets are deliberately omitted
// so a snapshot survives trivial whitespace changes in a test's input
// literal.
type Snap struct {
	Kind     string `json:"kind"`
	Op       string `json:"op,omitempty"`
	Text     string `json:"text,omitempty"`
	Message  string `json:"message,omitempty"`
	Children []Snap `json:"children,omitempty"`
}

// Snapshot builds a Snap tree for n. src is the original input, needed to
// render each leaf token's text.
func Snapshot(n *cst.Node, src []byte) Snap {
	if n == nil {
		return Snap{Kind: "nil"}
	}
	s := Snap{Kind: n.Kind.String(), Op: n.Op, Message: n.Message}
	if n.Kind == cst.KindToken && n.Tok != nil {
		s.Text = n.Tok.Text(src)
	}
	for _, c := range n.Children {
		s.Children = append(s.Children, Snapshot(c, src))
	}
	return s
}

// Tok is a convenience constructor for expected snapshots in table-driven
// tests: Tok("Plus") matches a KindToken leaf whose source text is
// "Plus".
func Tok(text string) Snap { return Snap{Kind: "Token", Text: text} }

// Op is a convenience constructor for an operator/compound/call/group
// node with the given kind and tag.
func Op(kind, op string, children ...Snap) Snap {
	return Snap{Kind: kind, Op: op, Children: children}
}
