// Package parser implements syntax analysis: recursive descent with one
// function per precedence level, left-folding same-level binary operators.
//
// Expression grammar, in order of increasing precedence:
//
//	expression  -> ternary ;
//	ternary     -> equality ( "?" equality ":" equality )* ;
//	equality    -> comparison ( ( "!=" | "==" ) comparison )* ;
//	comparison  -> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
//	term        -> factor ( ( "-" | "+" ) factor )* ;
//	factor      -> unary ( ( "/" | "*" ) unary )* ;
//	unary       -> ( "!" | "-" ) unary | primary ;
//	primary     -> NUMBER | STRING | "true" | "false" | "nil"
//	             | "(" expression ")" | IDENTIFIER ;
//
// Statement grammar:
//
//	program     -> declaration* EOF ;
//	declaration -> "var" IDENTIFIER ( "=" expression )? ";" | statement ;
//	statement   -> "print" expression ";" | expression ";" ;
package parser

import (
	"golox/internal/ast"
	"golox/internal/diag"
	"golox/internal/span"
	"golox/internal/token"
)

// DefaultMaxDepth bounds expression nesting so pathological input produces
// a diagnostic instead of exhausting the call stack.
const DefaultMaxDepth = 200

// Parser performs syntax analysis on a token stream produced by the lexer.
// The stream must end with the EOF sentinel; a stream without one violates
// the scanner contract and causes a panic rather than a diagnostic.
type Parser struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
	log      diag.Log
}

// New creates a parser that takes ownership of the token slice.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth overrides the expression nesting limit. Values < 1 are
// ignored.
func (p *Parser) SetMaxDepth(n int) {
	if n >= 1 {
		p.maxDepth = n
	}
}

// Parse parses the entire token stream and returns the statements and the
// syntax errors encountered. A declaration that fails to parse costs one
// diagnostic and synchronization to the next statement boundary; the parser
// never gives up on the rest of the input.
func (p *Parser) Parse() ([]ast.Stmt, []*diag.Error) {
	// Whitespace tokens are stream hygiene by the time parsing starts.
	// Comments stay in: no grammar rule matches them, so one interrupting a
	// statement surfaces as an ordinary primary-rule error.
	kept := p.tokens[:0]
	for _, tok := range p.tokens {
		if !tok.Kind.IsWhitespace() {
			kept = append(kept, tok)
		}
	}
	p.tokens = kept

	var statements []ast.Stmt
	for {
		if _, ok := p.peek(); !ok {
			break
		}
		stmt, err := p.declaration()
		if err != nil {
			p.log.Push(err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements, p.log.Errors()
}

// ---- token navigation ----

// peek returns the next token without advancing. It reports false exactly
// at the EOF sentinel and never reads past it.
func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		panic("parser: consumed all tokens without encountering EOF sentinel")
	}
	tok := p.tokens[p.pos]
	return tok, tok.Kind != token.EOF
}

// advance returns the next token and moves past it, stopping at EOF.
func (p *Parser) advance() (token.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// check reports whether the next token has the given kind.
func (p *Parser) check(kind token.Kind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

// consume advances and requires the consumed token to match the expected
// kind; only the variant is compared, never the payload.
func (p *Parser) consume(expected token.Kind) (token.Token, *diag.Error) {
	next, ok := p.peek()
	if !ok {
		return next, diag.ParsingAtEOF("Reached end of file while expecting '%s'", expected)
	}
	p.advance()
	if next.Kind == expected {
		return next, nil
	}
	return next, diag.Parsingf(next.Span,
		"Expected '%s' after expression, instead found '%s'", expected, next.Kind)
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		panic("parser: attempted to read previous token while at index 0")
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) prevEnd() span.Location {
	return p.previous().Span.End
}

// ---- error recovery ----

// synchronize advances to a likely statement boundary: just past a
// semicolon, or just before a statement-starting keyword. This bounds the
// damage of a malformed statement to a single diagnostic.
func (p *Parser) synchronize() {
	for {
		tok, ok := p.peek()
		if !ok {
			return
		}
		switch tok.Kind {
		case token.KW_CLASS, token.KW_FOR, token.KW_FUN, token.KW_IF,
			token.KW_PRINT, token.KW_RETURN, token.KW_VAR, token.KW_WHILE:
			return
		}
		p.advance()
		if tok.Kind == token.SEMICOLON {
			return
		}
	}
}

// ---- statement rules ----

func (p *Parser) declaration() (ast.Stmt, *diag.Error) {
	if p.check(token.KW_VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// varDeclaration parses: "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() (ast.Stmt, *diag.Error) {
	start, _ := p.advance() // consume 'var'

	name, err := p.consume(token.IDENT)
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if p.check(token.ASSIGN) {
		p.advance()
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.VarStmt{
		StmtBase: makeStmtBase(start.Span.Start, p.prevEnd()),
		Name:     name.Lexeme,
		Init:     init,
	}, nil
}

func (p *Parser) statement() (ast.Stmt, *diag.Error) {
	if p.check(token.KW_PRINT) {
		// The print keyword is never matched by an expression rule, so it
		// must be consumed here.
		start, _ := p.advance()
		return p.printStatement(start)
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement(start token.Token) (ast.Stmt, *diag.Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{
		StmtBase: makeStmtBase(start.Span.Start, p.prevEnd()),
		Expr:     expr,
	}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, *diag.Error) {
	start, _ := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{
		StmtBase: makeStmtBase(start.Span.Start, p.prevEnd()),
		Expr:     expr,
	}, nil
}

// ---- expression rules ----

func (p *Parser) expression() (ast.Expr, *diag.Error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.exitNesting()
	return p.ternary()
}

// ternary parses: equality ( "?" equality ":" equality )*
// The ":" is mandatory once a "?" has been consumed.
func (p *Parser) ternary() (ast.Expr, *diag.Error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(token.QUESTION) {
		p.advance()
		then, err := p.equality()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON); err != nil {
			return nil, err
		}
		els, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.TernaryExpr{
			ExprBase: makeExprBase(expr.GetSpan().Start, p.prevEnd()),
			Cond:     expr,
			Then:     then,
			Else:     els,
		}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, *diag.Error) {
	return p.binaryLevel(p.comparison, token.NEQ, token.EQ)
}

func (p *Parser) comparison() (ast.Expr, *diag.Error) {
	return p.binaryLevel(p.term, token.GT, token.GTE, token.LT, token.LTE)
}

func (p *Parser) term() (ast.Expr, *diag.Error) {
	return p.binaryLevel(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, *diag.Error) {
	return p.binaryLevel(p.unary, token.SLASH, token.STAR)
}

// binaryLevel implements one left-associative precedence level: parse one
// operand at the next-higher level, then fold operators of this level.
func (p *Parser) binaryLevel(operand func() (ast.Expr, *diag.Error), operators ...token.Kind) (ast.Expr, *diag.Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || !kindIn(tok.Kind, operators) {
			break
		}
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			ExprBase: makeExprBase(expr.GetSpan().Start, p.prevEnd()),
			Left:     expr,
			Op:       tok,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *diag.Error) {
	if tok, ok := p.peek(); ok && (tok.Kind == token.BANG || tok.Kind == token.MINUS) {
		if err := p.enterNesting(); err != nil {
			return nil, err
		}
		defer p.exitNesting()
		p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			ExprBase: makeExprBase(tok.Span.Start, p.prevEnd()),
			Op:       tok,
			Right:    right,
		}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, *diag.Error) {
	tok, ok := p.peek()
	if !ok {
		// Best-effort localization: point at the last consumed token.
		return nil, diag.Parsingf(p.previous().Span,
			"Ran out of tokens while satisfying expression rule")
	}
	p.advance()

	switch tok.Kind {
	case token.KW_FALSE:
		return &ast.BoolLit{ExprBase: exprBaseFrom(tok), Value: false}, nil
	case token.KW_TRUE:
		return &ast.BoolLit{ExprBase: exprBaseFrom(tok), Value: true}, nil
	case token.KW_NIL:
		return &ast.NilLit{ExprBase: exprBaseFrom(tok)}, nil
	case token.NUMBER:
		return &ast.NumberLit{ExprBase: exprBaseFrom(tok), Value: tok.Number}, nil
	case token.STRING:
		return &ast.StringLit{ExprBase: exprBaseFrom(tok), Value: tok.Lexeme}, nil
	case token.IDENT:
		return &ast.VariableExpr{ExprBase: exprBaseFrom(tok), Name: tok.Lexeme}, nil
	case token.LPAREN:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.GroupingExpr{
			ExprBase: makeExprBase(tok.Span.Start, p.prevEnd()),
			Expr:     expr,
		}, nil
	default:
		return nil, diag.Parsingf(tok.Span,
			"Expected value or expression, found '%s'", tok.Kind)
	}
}

// ---- nesting guard ----

func (p *Parser) enterNesting() *diag.Error {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		tok, _ := p.peek()
		return diag.Parsingf(tok.Span,
			"Expression nesting exceeds maximum depth of %d", p.maxDepth)
	}
	return nil
}

func (p *Parser) exitNesting() {
	p.depth--
}

// ---- helpers ----

func kindIn(kind token.Kind, kinds []token.Kind) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func makeExprBase(start, end span.Location) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Span: span.Span{Start: start, End: end}}}
}

func makeStmtBase(start, end span.Location) ast.StmtBase {
	return ast.StmtBase{NodeBase: ast.NodeBase{Span: span.Span{Start: start, End: end}}}
}

func exprBaseFrom(tok token.Token) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Span: tok.Span}}
}
