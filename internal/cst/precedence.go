// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cst

import "github.com/mdhender/wlparse/internal/token"

// Assoc records how an infix parselet chooses the precedence its
// right-hand recursive call binds at: right-associative
// operators recurse at precedence-1 (so a second occurrence at the same
// level is absorbed into the same call), left-associative operators
// recurse at precedence (so the loop in parseExpr, not the recursive
// call, picks up the next occurrence), and non-associative operators
// recurse at precedence+1 (so a second occurrence at the same level fails
// to bind and is left for the caller, which reports it as unexpected).
type Assoc int

const (
	LeftAssoc Assoc = iota
	RightAssoc
	NonAssoc
)

// precEntry pairs a binding power with its associativity.
type precEntry struct {
	Prec  int
	Assoc Assoc
}

// infixPrecedence is the precedence table: integer binding powers
// spanning from loosest (CompoundExpression) to tightest (Call/Part,
// handled separately in parseInfixLoop since it binds at every
// precedence level). It is a representative subset of the full table,
// covering the common arithmetic/logical/pattern/rule forms; operators
// absent from this table (Dot, standalone Backtick) are not registered
// as infix and fall through to the parser's unexpected-token recovery
// path.
var infixPrecedence = map[token.Kind]precEntry{
	token.Semicolon: {10, LeftAssoc}, // CompoundExpression

	token.SetOp:          {40, RightAssoc},
	token.SetDelayedOp:   {40, RightAssoc},
	token.UpSetOp:        {40, RightAssoc},
	token.UpSetDelayedOp: {40, RightAssoc},
	token.TagSetOp:       {40, RightAssoc},
	token.AddToOp:        {40, RightAssoc},
	token.SubtractFromOp: {40, RightAssoc},
	token.TimesByOp:      {40, RightAssoc},
	token.DivideByOp:     {40, RightAssoc},

	token.SlashSlash: {70, LeftAssoc}, // postfix-style //, parsed as infix with a function on the right

	token.ReplaceAll:      {110, LeftAssoc},
	token.ReplaceRepeated: {110, LeftAssoc},
	token.Rule:            {120, RightAssoc},
	token.RuleDelayed:     {120, RightAssoc},
	token.SlashSemi:       {130, LeftAssoc},  // Condition, a /; cond
	token.DoubleTilde:     {135, RightAssoc}, // StringExpression, a ~~ b
	token.Pipe:            {160, LeftAssoc},  // Alternatives, a | b
	token.PatternTest:     {170, LeftAssoc},  // a ? test

	token.PipePipe: {215, LeftAssoc},
	token.AmpAmp:   {220, LeftAssoc},

	token.Equal:        {290, NonAssoc},
	token.Unequal:      {290, NonAssoc},
	token.SameQ:        {290, NonAssoc},
	token.UnsameQ:      {290, NonAssoc},
	token.Less:         {290, NonAssoc},
	token.Greater:      {290, NonAssoc},
	token.LessEqual:    {290, NonAssoc},
	token.GreaterEqual: {290, NonAssoc},

	token.SpanOp: {305, LeftAssoc},

	token.Plus:  {310, LeftAssoc},
	token.Minus: {310, LeftAssoc},

	token.Star:     {400, LeftAssoc},
	token.Slash:    {400, LeftAssoc},
	token.StarStar: {400, LeftAssoc}, // NonCommutativeMultiply

	token.Tilde: {420, LeftAssoc}, // infix function application, ~f~

	token.StringJoinOp: {600, LeftAssoc},

	token.Caret: {590, RightAssoc}, // Power

	token.SlashAt:      {620, RightAssoc}, // Map
	token.SlashSlashAt: {620, RightAssoc}, // MapAll
	token.AtAt:         {620, RightAssoc}, // Apply
	token.AtAtAt:       {620, RightAssoc}, // Apply at level 1
	token.At:           {640, RightAssoc}, // Prefix application, f @ x

	token.Colon: {650, LeftAssoc}, // pattern default/optional, parser disambiguates by context
}

// prefixMinusPrecedence is the floor unary Minus parses its operand at.
// It sits above Times(400) so "-2*3" parses as Times(Minus(2), 3) rather
// than Minus(Times(2,3)) -- the unary rewrite in internal/ast then folds
// Minus(2) into Times[-1, 2] and flattens the outer Times -- and below
// Power(590) so "-2^2" parses as Minus(Power(2,2)).
const prefixMinusPrecedence = 480

// postfixPrecedence covers the postfix-only operators (Bang/Factorial,
// Increment, Decrement, Amp/Function) that parseInfixLoop checks for
// after building a primary expression.
var postfixPrecedence = map[token.Kind]int{
	token.Bang:        670,
	token.IncrementOp: 660,
	token.DecrementOp: 660,
	token.Amp:         90,
}

// callPrecedence is the binding power of head[args] / head[[args]]: high
// enough that only an already-parsed head participates.
const callPrecedence = 900
