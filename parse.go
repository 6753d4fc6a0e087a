// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wlparse

import (
	"github.com/mdhender/wlparse/internal/ast"
	"github.com/mdhender/wlparse/internal/cst"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/token"
)

// Tokenize runs only the character layer and tokenizer, returning the
// full token stream (ending with a token.EOF token) and any issues the
// lexer raised.
func Tokenize(src []byte, opts ParseOptions) ([]*token.Token, []diag.Issue) {
	lx := opts.newLexer(src)
	var toks []*token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return toks, lx.Issues()
}

// ParseCST runs the tokenizer and the Pratt parser, returning a single
// concrete syntax tree covering the whole input.
func ParseCST(src []byte, opts ParseOptions) (*cst.Node, []diag.Issue) {
	toks, lexIssues := Tokenize(src, opts)
	return cst.ParseTokens(toks, lexIssues)
}

// ParseAST runs the full pipeline through the abstraction pass,
// returning the normalized syntax tree. Issues from both the CST and AST
// stages are concatenated, CST issues first.
func ParseAST(src []byte, opts ParseOptions) (*ast.Node, []diag.Issue) {
	cstRoot, cstIssues := ParseCST(src, opts)
	astRoot, astIssues := ast.FromCST(cstRoot, src, opts.Quirks)
	issues := make([]diag.Issue, 0, len(cstIssues)+len(astIssues))
	issues = append(issues, cstIssues...)
	issues = append(issues, astIssues...)
	return astRoot, issues
}

// Parse runs the full pipeline and wraps it in a Result.
func Parse(src []byte, opts ParseOptions) *Result {
	cstRoot, cstIssues := ParseCST(src, opts)
	astRoot, astIssues := ast.FromCST(cstRoot, src, opts.Quirks)
	issues := make([]diag.Issue, 0, len(cstIssues)+len(astIssues))
	issues = append(issues, cstIssues...)
	issues = append(issues, astIssues...)
	return newResult(cstRoot, astRoot, issues)
}

// TokenizeAll is an alias for Tokenize kept for symmetry with the
// sequence entry points below, so a caller scanning for sequence-capable
// entry points finds a TokenizeAll/ParseCSTSequence/ParseASTSequence
// trio rather than a single Tokenize with no matching name.
func TokenizeAll(src []byte, opts ParseOptions) ([]*token.Token, []diag.Issue) {
	return Tokenize(src, opts)
}

// ParseCSTSequence parses src as a sequence of independent top-level
// expressions instead of folding every top-level `;` into one
// CompoundExpression CST node -- the shape a REPL or a notebook
// cell-by-cell editor needs, where each entered line/cell is its own
// tree.
func ParseCSTSequence(src []byte, opts ParseOptions) ([]*cst.Node, []diag.Issue) {
	toks, lexIssues := Tokenize(src, opts)
	return cst.ParseTokensSequence(toks, lexIssues)
}

// ParseASTSequence runs ParseCSTSequence and abstracts each element
// independently, returning one AST root per top-level expression. The
// CST issues of all elements come first, followed by the AST issues of
// each element in order.
func ParseASTSequence(src []byte, opts ParseOptions) ([]*ast.Node, []diag.Issue) {
	cstNodes, cstIssues := ParseCSTSequence(src, opts)
	astNodes, astIssues := ast.FromCSTSequence(cstNodes, src, opts.Quirks)
	issues := make([]diag.Issue, 0, len(cstIssues)+len(astIssues))
	issues = append(issues, cstIssues...)
	issues = append(issues, astIssues...)
	return astNodes, issues
}
