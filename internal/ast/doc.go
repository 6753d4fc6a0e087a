// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package ast implements the CST-to-AST abstraction pass: it
// normalizes a concrete syntax tree into the tagged head/argument
// form a caller actually wants to walk -- associative operators flattened,
// unary minus and subtraction rewritten into Plus/Times, division rewritten
// into Times/Power, pattern forms collapsed into Pattern/Blank/Optional,
// and ;; spans desugared into Span -- while discarding the trivia and raw
// operator tokens the CST kept for round-tripping. The AST holds no
// reference to the *cst.Node it was built from.
package ast
