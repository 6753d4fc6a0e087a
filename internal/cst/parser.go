// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cst

import (
	"fmt"

	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/lexer"
	"github.com/mdhender/wlparse/internal/span"
	"github.com/mdhender/wlparse/internal/token"
)

// role names the kind of context a ctxFrame represents, used only for
// diagnostic messages.
type role int

const (
	roleGroup role = iota
	roleList
	roleAssoc
	roleCall
	rolePart
)

func (r role) String() string {
	switch r {
	case roleGroup:
		return "inside ( )"
	case roleList:
		return "inside { }"
	case roleAssoc:
		return "inside <| |>"
	case roleCall:
		return "inside [ ]"
	case rolePart:
		return "inside [[ ]]"
	default:
		return "unknown context"
	}
}

// ctxFrame is one entry on the parser's context stack: the expected
// closer for the bracketed construct currently being parsed, and the
// token that opened it (used to anchor recovery diagnostics and
// synthesized closers at the right span).
type ctxFrame struct {
	role    role
	closer  token.Kind
	openTok *token.Token
}

// Parser is the Pratt driver: parsePrefix
// dispatches a token in prefix position to build a left operand,
// parseInfixLoop then repeatedly checks whether the next token's
// precedence clears the current floor and, if so, folds it (and a
// recursively-parsed right operand) into a new left operand. The context
// stack tracks which bracketed construct is open so error recovery can
// tell a genuinely missing closer from a stray one that belongs to an
// outer context.
type Parser struct {
	toks     []*token.Token
	pos      int
	b        Builder
	issues   []diag.Issue
	contexts []ctxFrame
}

// NewParser returns a Parser over an already-tokenized stream. toks must
// end with a token.EOF token, as internal/lexer.Lexer.Next always
// produces.
func NewParser(toks []*token.Token) *Parser {
	return &Parser{toks: toks, b: TreeBuilder{}}
}

// Parse tokenizes input and parses the result into a single CST root.
// The returned Node may contain KindError nodes; a caller distinguishes
// a usable-but-partial tree from a fatal failure by inspecting the
// returned issues' severities, not a returned error.
func Parse(input []byte, tabWidth int) (*Node, []diag.Issue) {
	toks, lexIssues := tokenizeAll(input, tabWidth)
	return ParseTokens(toks, lexIssues)
}

// ParseTokens parses an already-tokenized stream (which must end with a
// token.EOF token) into a single CST root. lexIssues are placed ahead
// of the parser's own issues in the returned list. Callers that need
// non-default lexer modes tokenize themselves
// and enter here.
func ParseTokens(toks []*token.Token, lexIssues []diag.Issue) (*Node, []diag.Issue) {
	p := NewParser(toks)
	p.issues = append(p.issues, lexIssues...)
	root := p.parseExpr(0)
	if p.cur().Kind != token.EOF {
		root = p.recoverTrailing(root)
	}
	return root, p.issues
}

// ParseSequence tokenizes input once and parses it as a sequence of
// independent top-level expressions
// instead of a single CompoundExpression: a top-level `;`
// between expressions separates sequence elements rather than folding them
// into one chain, matching how a REPL treats each entered line.
func ParseSequence(input []byte, tabWidth int) ([]*Node, []diag.Issue) {
	toks, lexIssues := tokenizeAll(input, tabWidth)
	return ParseTokensSequence(toks, lexIssues)
}

// ParseTokensSequence is ParseSequence over an already-tokenized stream.
func ParseTokensSequence(toks []*token.Token, lexIssues []diag.Issue) ([]*Node, []diag.Issue) {
	p := NewParser(toks)
	p.issues = append(p.issues, lexIssues...)
	var nodes []*Node
	// Each element parses at the CompoundExpression floor so a top-level
	// `;` stops the element instead of folding everything after it into
	// one CompoundExpression chain.
	seqFloor := infixPrecedence[token.Semicolon].Prec
	for p.cur().Kind != token.EOF {
		nodes = append(nodes, p.parseExpr(seqFloor))
		if p.cur().Kind == token.Semicolon {
			p.advance()
			continue
		}
		if p.cur().Kind != token.EOF {
			bad := p.advance()
			p.issue(diag.Error, fmt.Sprintf("unexpected trailing token %s", bad.Kind), bad.Span)
			nodes = append(nodes, p.b.Error("unexpected trailing input", p.b.Token(bad)))
		}
	}
	return nodes, p.issues
}

func tokenizeAll(input []byte, tabWidth int) ([]*token.Token, []diag.Issue) {
	lx := lexer.New(input, tabWidth)
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

// Issues returns every issue recorded during parsing (lexer issues are
// folded in by Parse, but a caller driving NewParser directly owns
// merging the lexer's own issues itself).
func (p *Parser) Issues() []diag.Issue {
	return p.issues
}

func (p *Parser) cur() *token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() *token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) issue(sev diag.Severity, msg string, sp span.Span) {
	p.issues = append(p.issues, diag.Issue{Kind: "cst", Severity: sev, Message: msg, Span: sp})
}

func (p *Parser) pushContext(f ctxFrame) {
	p.contexts = append(p.contexts, f)
}

// popContext is a checked accessor: popping an empty context stack is a
// bug in the parser, not an input error, so it reports via a distinct
// issue kind rather than panicking.
func (p *Parser) popContext() (ctxFrame, bool) {
	if len(p.contexts) == 0 {
		return ctxFrame{}, false
	}
	f := p.contexts[len(p.contexts)-1]
	p.contexts = p.contexts[:len(p.contexts)-1]
	return f, true
}

func (p *Parser) mustPopContext() {
	if _, ok := p.popContext(); !ok {
		p.issues = append(p.issues, diag.Issue{Kind: "cst.internal", Severity: diag.Fatal, Message: "internal: pop on empty context stack"})
	}
}

// ---- expression driver ----

// messageNamePrecedence is the binding power of `name::tag`; it binds as
// tightly as Call so a message name never accidentally absorbs an
// enclosing expression.
const messageNamePrecedence = 900

func (p *Parser) parseExpr(floor int) *Node {
	left := p.parsePrefix()
	return p.parseInfixLoop(left, floor)
}

func (p *Parser) parseInfixLoop(left *Node, floor int) *Node {
	for {
		tok := p.cur()

		if tok.Kind == token.DoubleColon && messageNamePrecedence > floor {
			left = p.parseMessageName(left)
			continue
		}
		if tok.Kind == token.LBracket && callPrecedence > floor {
			left = p.parseBracketedCall(left, token.RBracket, roleCall)
			continue
		}
		if tok.Kind == token.LDoubleBracket && callPrecedence > floor {
			left = p.parseBracketedCall(left, token.RDoubleBracket, rolePart)
			continue
		}
		if pp, ok := postfixPrecedence[tok.Kind]; ok && pp > floor {
			left = p.parsePostfixOp(left, tok)
			continue
		}
		entry, ok := infixPrecedence[tok.Kind]
		if !ok || entry.Prec <= floor {
			break
		}
		left = p.parseInfix(left, entry)
	}
	return left
}

func (p *Parser) parseInfix(left *Node, entry precEntry) *Node {
	opTok := p.advance()
	rightFloor := entry.Prec
	switch entry.Assoc {
	case RightAssoc:
		rightFloor = entry.Prec - 1
	case NonAssoc:
		rightFloor = entry.Prec + 1
	}
	right := p.parseExpr(rightFloor)
	op := operatorTag(opTok.Kind)
	if opTok.Kind == token.Colon {
		op = colonTag(left)
	}
	return p.b.Operator(op, left, p.b.Token(opTok), right)
}

func (p *Parser) parsePostfixOp(left *Node, opTok *token.Token) *Node {
	p.advance()
	switch opTok.Kind {
	case token.Bang:
		return p.b.Operator("Factorial", left, p.b.Token(opTok))
	case token.IncrementOp:
		return p.b.Operator("Increment", left, p.b.Token(opTok))
	case token.DecrementOp:
		return p.b.Operator("Decrement", left, p.b.Token(opTok))
	case token.Amp:
		return p.b.Operator("Function", left, p.b.Token(opTok))
	default:
		return left
	}
}

func (p *Parser) parseMessageName(left *Node) *Node {
	colonColon := p.advance()
	var tagNode *Node
	if p.cur().Kind == token.Identifier || p.cur().Kind == token.String {
		tagNode = p.b.Token(p.advance())
	} else {
		p.issue(diag.Error, "expected message tag after `::`", p.cur().Span)
		tagNode = p.missingOperand()
	}
	return p.b.Compound("MessageName", left, p.b.Token(colonColon), tagNode)
}

// parseBracketedCall parses head[args] or head[[args]]: an infix
// parselet on `[`/`[[` with very high precedence so only an
// already-parsed head participates.
func (p *Parser) parseBracketedCall(head *Node, closer token.Kind, r role) *Node {
	openTok := p.advance()
	p.pushContext(ctxFrame{role: r, closer: closer, openTok: openTok})
	args, seps := p.parseCommaList(closer)
	closeTok := p.expectCloser(closer, openTok)
	p.mustPopContext()
	op := "Call"
	if closer == token.RDoubleBracket {
		op = "Part"
	}
	return p.b.Call(head, openTok, args, seps, closeTok, op)
}

// parseCommaList parses a comma-separated argument/element list up to
// (not including) closer, returning the elements and the comma tokens
// between them. Consecutive commas, and a leading or trailing comma,
// produce a distinguished "NullSlot" compound node, which internal/ast
// later converts to a literal Null.
func (p *Parser) parseCommaList(closer token.Kind) ([]*Node, []*token.Token) {
	var out []*Node
	var seps []*token.Token
	if p.cur().Kind == closer || p.cur().Kind == token.EOF {
		return out, seps
	}
	for {
		if p.cur().Kind == token.Comma || p.cur().Kind == closer || p.cur().Kind == token.EOF {
			out = append(out, p.b.Compound("NullSlot"))
		} else {
			out = append(out, p.parseExpr(0))
		}
		if p.cur().Kind == token.Comma {
			seps = append(seps, p.advance())
			continue
		}
		break
	}
	return out, seps
}

// expectCloser consumes closer if it is the current token. Otherwise it
// recovers: synthesize the closer outright at
// EOF or when the current token is some other closer (so it can't
// plausibly belong here), pop back out when the current token matches an
// *outer* context's closer, or else skip forward looking for the
// expected closer before giving up and synthesizing one.
func (p *Parser) expectCloser(closer token.Kind, openTok *token.Token) *token.Token {
	if p.cur().Kind == closer {
		return p.advance()
	}

	if p.cur().Kind == token.EOF {
		p.issue(diag.Fatal, fmt.Sprintf("missing `%s`", closerText(closer)), span.At(p.cur().Span.Start))
		return p.synthClose(closer)
	}

	if isCloserKind(p.cur().Kind) && p.cur().Kind != closer {
		if p.matchesOuterContext(p.cur().Kind) {
			p.issue(diag.Error, fmt.Sprintf("missing `%s` before `%s`", closerText(closer), closerText(p.cur().Kind)), span.At(p.cur().Span.Start))
			return p.synthClose(closer)
		}
		p.issue(diag.Error, fmt.Sprintf("unexpected `%s`, expected `%s`", closerText(p.cur().Kind), closerText(closer)), p.cur().Span)
		return p.synthClose(closer)
	}

	p.issue(diag.Error, fmt.Sprintf("expected `%s`", closerText(closer)), p.cur().Span)
	for p.cur().Kind != closer && p.cur().Kind != token.EOF && !isCloserKind(p.cur().Kind) {
		p.advance()
	}
	if p.cur().Kind == closer {
		return p.advance()
	}
	return p.synthClose(closer)
}

func (p *Parser) matchesOuterContext(k token.Kind) bool {
	for i := len(p.contexts) - 1; i >= 0; i-- {
		if p.contexts[i].closer == k {
			return true
		}
	}
	return false
}

func isCloserKind(k token.Kind) bool {
	switch k {
	case token.RParen, token.RBrace, token.RBracket, token.RDoubleBracket, token.AssocClose:
		return true
	default:
		return false
	}
}

func (p *Parser) synthClose(closer token.Kind) *token.Token {
	sp := span.At(p.cur().Span.Start)
	return &token.Token{Kind: closer, Span: sp, Synthesized: true}
}

func closerText(k token.Kind) string {
	switch k {
	case token.RParen:
		return ")"
	case token.RBrace:
		return "}"
	case token.RBracket:
		return "]"
	case token.RDoubleBracket:
		return "]]"
	case token.AssocClose:
		return "|>"
	default:
		return k.String()
	}
}

// recoverTrailing is called once, after the top-level parseExpr
// returns, if tokens remain before EOF: something (typically a stray
// closer) stopped the infix loop early. Every remaining token is wrapped
// into an error node rather than silently dropped.
func (p *Parser) recoverTrailing(root *Node) *Node {
	var extras []*Node
	for p.cur().Kind != token.EOF {
		bad := p.advance()
		p.issue(diag.Error, fmt.Sprintf("unexpected trailing token %s", bad.Kind), bad.Span)
		extras = append(extras, p.b.Token(bad))
	}
	if len(extras) == 0 {
		return root
	}
	all := append([]*Node{root}, extras...)
	return p.b.Error("unexpected trailing input", all...)
}

// ---- prefix parselets ----

func (p *Parser) parsePrefix() *Node {
	tok := p.cur()
	switch tok.Kind {
	case token.Identifier:
		p.advance()
		return p.maybeBlankSuffix(p.b.Token(tok))
	case token.Integer, token.Real, token.String, token.Slot, token.SlotSequence, token.Out:
		p.advance()
		return p.b.Token(tok)
	case token.Illegal:
		// The lexer already recorded a descriptive issue for this span;
		// wrap it without re-reporting.
		p.advance()
		return p.b.Error("malformed token", p.b.Token(tok))
	case token.Blank, token.BlankSequence, token.BlankNullSequence:
		return p.parseBlankCompound()
	case token.Minus:
		p.advance()
		operand := p.parseExpr(prefixMinusPrecedence)
		return p.b.Operator("UnaryMinus", p.b.Token(tok), operand)
	case token.Plus:
		p.advance()
		operand := p.parseExpr(prefixMinusPrecedence)
		return p.b.Operator("UnaryPlus", p.b.Token(tok), operand)
	case token.Bang:
		p.advance()
		operand := p.parseExpr(230)
		return p.b.Operator("Not", p.b.Token(tok), operand)
	case token.LParen:
		return p.parseParenGroup()
	case token.LBrace:
		return p.parseListGroup()
	case token.AssocOpen:
		return p.parseAssocGroup()
	case token.LinearSyntaxOpen:
		return p.parseLinearSyntax()
	case token.SpanOp:
		// `;;` in prefix position means its start is implicit: don't
		// consume it here, so the infix loop immediately reinterprets the
		// same token as the connector between this sentinel and whatever
		// follows.
		return p.b.Compound("ImplicitSpanStart")
	default:
		return p.missingOperand()
	}
}

// maybeBlankSuffix stitches an identifier onto an immediately-following
// blank form (no whitespace between) into a Pattern compound node:
// `x_`, `x__`, `x___`, `x_head`.
func (p *Parser) maybeBlankSuffix(name *Node) *Node {
	if !p.immediateBlank() {
		return name
	}
	blank := p.parseBlankCompound()
	return p.b.Compound("Pattern", name, blank)
}

func (p *Parser) immediateBlank() bool {
	switch p.cur().Kind {
	case token.Blank, token.BlankSequence, token.BlankNullSequence:
		return len(p.cur().LeadingTrivia) == 0
	default:
		return false
	}
}

// parseBlankCompound parses a standalone blank form: `_`, `__`, `___`,
// or `_head` (only a single Blank takes a head; `__head`/`___head` are
// not valid forms).
func (p *Parser) parseBlankCompound() *Node {
	tok := p.advance()
	tag := blankTag(tok.Kind)
	if tok.Kind == token.Blank && p.cur().Kind == token.Identifier && len(p.cur().LeadingTrivia) == 0 {
		headTok := p.advance()
		return p.b.Compound(tag, p.b.Token(tok), p.b.Token(headTok))
	}
	return p.b.Compound(tag, p.b.Token(tok))
}

func blankTag(k token.Kind) string {
	switch k {
	case token.BlankSequence:
		return "BlankSequence"
	case token.BlankNullSequence:
		return "BlankNullSequence"
	default:
		return "Blank"
	}
}

func (p *Parser) parseParenGroup() *Node {
	openTok := p.advance()
	p.pushContext(ctxFrame{role: roleGroup, closer: token.RParen, openTok: openTok})
	var inner *Node
	if p.cur().Kind == token.RParen {
		p.issue(diag.Error, "empty parenthesized group", span.At(openTok.Span.Start))
		inner = p.b.Compound("Null")
	} else {
		inner = p.parseExpr(0)
	}
	closeTok := p.expectCloser(token.RParen, openTok)
	p.mustPopContext()
	return p.b.Group(openTok, []*Node{inner}, nil, closeTok, "Group")
}

func (p *Parser) parseListGroup() *Node {
	openTok := p.advance()
	p.pushContext(ctxFrame{role: roleList, closer: token.RBrace, openTok: openTok})
	items, seps := p.parseCommaList(token.RBrace)
	closeTok := p.expectCloser(token.RBrace, openTok)
	p.mustPopContext()
	return p.b.Group(openTok, items, seps, closeTok, "List")
}

func (p *Parser) parseAssocGroup() *Node {
	openTok := p.advance()
	p.pushContext(ctxFrame{role: roleAssoc, closer: token.AssocClose, openTok: openTok})
	items, seps := p.parseCommaList(token.AssocClose)
	closeTok := p.expectCloser(token.AssocClose, openTok)
	p.mustPopContext()
	return p.b.Group(openTok, items, seps, closeTok, "Association")
}

// parseLinearSyntax consumes a \< ... \> linear-syntax box. Nesting is
// tracked by depth; contents are not re-entered as expressions since a
// linear-syntax box encodes typeset box structure, not Wolfram Language
// grammar.
func (p *Parser) parseLinearSyntax() *Node {
	openTok := p.advance()
	var children []*Node
	depth := 1
	for {
		if p.cur().Kind == token.EOF {
			p.issue(diag.Fatal, "unterminated linear-syntax box", span.At(openTok.Span.Start))
			break
		}
		if p.cur().Kind == token.LinearSyntaxOpen {
			depth++
		}
		if p.cur().Kind == token.LinearSyntaxClose {
			depth--
			if depth == 0 {
				break
			}
		}
		children = append(children, p.b.Token(p.advance()))
	}
	var closeTok *token.Token
	if p.cur().Kind == token.LinearSyntaxClose {
		closeTok = p.advance()
	}
	return p.b.Group(openTok, children, nil, closeTok, "LinearSyntaxBox")
}

// missingOperand implements the prefix side of error
// recovery. Tokens that a surrounding loop already knows how to make
// progress on (a separator, a closer, EOF) are left unconsumed and
// reported as a soft "missing operand" so the caller's own loop
// terminates normally; anything else is consumed and wrapped as an
// error node so the parser always makes progress.
func (p *Parser) missingOperand() *Node {
	tok := p.cur()
	switch tok.Kind {
	case token.Semicolon, token.Comma, token.RParen, token.RBrace, token.RBracket,
		token.RDoubleBracket, token.AssocClose, token.EOF:
		p.issue(diag.Warning, "missing operand", span.At(tok.Span.Start))
		return p.b.Compound("Null")
	default:
		bad := p.advance()
		p.issue(diag.Error, fmt.Sprintf("unexpected token %s", bad.Kind), bad.Span)
		return p.b.Error("unexpected token "+bad.Kind.String(), p.b.Token(bad))
	}
}

// ---- operator tagging ----

// operatorTag maps an infix operator token to the WL head name internal
// CST operator nodes use. Colon is handled separately by colonTag since
// its tag depends on the shape of its left operand.
func operatorTag(k token.Kind) string {
	switch k {
	case token.Semicolon:
		return "CompoundExpression"
	case token.SetOp:
		return "Set"
	case token.SetDelayedOp:
		return "SetDelayed"
	case token.UpSetOp:
		return "UpSet"
	case token.UpSetDelayedOp:
		return "UpSetDelayed"
	case token.TagSetOp:
		return "TagSet"
	case token.AddToOp:
		return "AddTo"
	case token.SubtractFromOp:
		return "SubtractFrom"
	case token.TimesByOp:
		return "TimesBy"
	case token.DivideByOp:
		return "DivideBy"
	case token.SlashSlash:
		return "ApplyPostfix"
	case token.ReplaceAll:
		return "ReplaceAll"
	case token.ReplaceRepeated:
		return "ReplaceRepeated"
	case token.Rule:
		return "Rule"
	case token.RuleDelayed:
		return "RuleDelayed"
	case token.SlashSemi:
		return "Condition"
	case token.DoubleTilde:
		return "StringExpression"
	case token.Pipe:
		return "Alternatives"
	case token.PatternTest:
		return "PatternTest"
	case token.PipePipe:
		return "Or"
	case token.AmpAmp:
		return "And"
	case token.Equal:
		return "Equal"
	case token.Unequal:
		return "Unequal"
	case token.SameQ:
		return "SameQ"
	case token.UnsameQ:
		return "UnsameQ"
	case token.Less:
		return "Less"
	case token.Greater:
		return "Greater"
	case token.LessEqual:
		return "LessEqual"
	case token.GreaterEqual:
		return "GreaterEqual"
	case token.SpanOp:
		return "Span"
	case token.Plus:
		return "Plus"
	case token.Minus:
		return "Subtract"
	case token.Star:
		return "Times"
	case token.Slash:
		return "Divide"
	case token.StarStar:
		return "NonCommutativeMultiply"
	case token.Tilde:
		return "InfixFunction"
	case token.StringJoinOp:
		return "StringJoin"
	case token.Caret:
		return "Power"
	case token.SlashAt:
		return "Map"
	case token.SlashSlashAt:
		return "MapAll"
	case token.AtAt:
		return "Apply"
	case token.AtAtAt:
		return "ApplyLevel1"
	case token.At:
		return "Prefix"
	default:
		return k.String()
	}
}

// colonTag disambiguates `:` by the shape of its left operand: following
// a blank form it is Optional's default-value separator; otherwise it is
// Pattern's context-sensitive name binder.
func colonTag(left *Node) string {
	if left != nil && left.Kind == KindCompound {
		switch left.Op {
		case "Pattern", "Blank", "BlankSequence", "BlankNullSequence":
			return "Optional"
		}
	}
	return "Pattern"
}
