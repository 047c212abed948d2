// Package parser implements the recursive-descent front end (C9
// supplement): a line is a bare expression, a `name = expr` assignment,
// a `:Command arg` directive, or blank, evaluated by the kernel the parser
// feeds into.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
)

// Precedence levels, low to high, mirroring the teacher's Pratt-parser
// ladder with the two extra tiers the kernel's grammar needs (or/and sit
// between sum and equality-less top, set difference rides with power).
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	SUM      // +, -
	PRODUCT  // *, /
	EXPONENT // ^, \ (set difference, right-assoc)
	PREFIX   // -x, not x
	POSTFIX  // x!
	CALL     // f(x), {x}
)

var precedences = map[TokenType]int{
	OR:        OR_PREC,
	AND:       AND_PREC,
	PLUS:      SUM,
	MINUS:     SUM,
	ASTERISK:  PRODUCT,
	SLASH:     PRODUCT,
	CARET:     EXPONENT,
	BACKSLASH: EXPONENT,
	BANG:      POSTFIX,
	LPAREN:    CALL,
}

type (
	prefixParseFn func() (expr.Expr, error)
	infixParseFn  func(expr.Expr) (expr.Expr, error)
)

// Assignment is a parsed `name = expr` line.
type Assignment struct {
	Name string
	Val  expr.Expr
}

// Command is a REPL directive line (`:SaveSession path.json`, `:Clear x`).
type Command struct {
	Name string
	Arg  string
}

// Line is the result of parsing one input line: exactly one of Expr,
// Assignment, or Command is set, or none for a blank line.
type Line struct {
	Expr       *expr.Expr
	Assignment *Assignment
	Command    *Command
}

// prattParser is the stateful engine driving one parse; Parser (below) is
// the stateless façade callers hold, mirroring the teacher's
// NewParser()/newStatefulParser(l) split.
type prattParser struct {
	l      *Lexer
	errors []string

	curToken  Token
	peekToken Token

	prefixParseFns map[TokenType]prefixParseFn
	infixParseFns  map[TokenType]infixParseFn
}

func newStatefulParser(l *Lexer) *prattParser {
	p := &prattParser{
		l:              l,
		errors:         []string{},
		prefixParseFns: make(map[TokenType]prefixParseFn),
		infixParseFns:  make(map[TokenType]infixParseFn),
	}

	p.registerPrefix(IDENT, p.parseIdentifier)
	p.registerPrefix(NUMBER, p.parseNumberLiteral)
	p.registerPrefix(LPAREN, p.parseGroupedExpression)
	p.registerPrefix(LBRACE, p.parseSetLiteral)
	p.registerPrefix(MINUS, p.parsePrefixExpression)
	p.registerPrefix(NOT, p.parseNotExpression)

	p.registerInfix(PLUS, p.parseInfixExpression)
	p.registerInfix(MINUS, p.parseInfixExpression)
	p.registerInfix(ASTERISK, p.parseInfixExpression)
	p.registerInfix(SLASH, p.parseInfixExpression)
	p.registerInfix(CARET, p.parseInfixExpression)
	p.registerInfix(BACKSLASH, p.parseInfixExpression)
	p.registerInfix(OR, p.parseInfixExpression)
	p.registerInfix(AND, p.parseInfixExpression)
	p.registerInfix(BANG, p.parseFactorialExpression)
	p.registerInfix(LPAREN, p.parseCallExpression)

	p.nextToken()
	p.nextToken()

	return p
}

func (p *prattParser) Errors() []string { return p.errors }

func (p *prattParser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("parse error at pos %d: %s", p.curToken.Pos, fmt.Sprintf(format, args...)))
}

func (p *prattParser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *prattParser) expectPeek(t TokenType) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.addError("expected next token %s, got %s ('%s')", t, p.peekToken.Type, p.peekToken.Literal)
	return false
}

// ParseLine parses one line of input: a `:Command arg` directive,
// `name = expr`, a bare expr, or blank (EOF immediately).
func ParseLine(input string) (Line, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, ":") {
		fields := strings.SplitN(trimmed[1:], " ", 2)
		cmd := Command{Name: fields[0]}
		if len(fields) == 2 {
			cmd.Arg = strings.TrimSpace(fields[1])
		}
		return Line{Command: &cmd}, nil
	}

	p := newStatefulParser(NewLexer(input))
	if p.curToken.Type == EOF {
		return Line{}, nil
	}
	if p.curToken.Type == IDENT && p.peekToken.Type == EQUALS {
		name := p.curToken.Literal
		p.nextToken() // consume name
		p.nextToken() // consume '='
		val, err := p.parseExpression(LOWEST)
		if err != nil {
			return Line{}, err
		}
		if err := p.finish(); err != nil {
			return Line{}, err
		}
		return Line{Assignment: &Assignment{Name: name, Val: val}}, nil
	}
	e, err := p.parseExpression(LOWEST)
	if err != nil {
		return Line{}, err
	}
	if err := p.finish(); err != nil {
		return Line{}, err
	}
	return Line{Expr: &e}, nil
}

func (p *prattParser) finish() error {
	if len(p.errors) > 0 {
		return fmt.Errorf("parsing failed:\n\t%s", strings.Join(p.errors, "\n\t"))
	}
	if p.peekToken.Type != EOF {
		return fmt.Errorf("unexpected token %q after expression", p.peekToken.Literal)
	}
	return nil
}

func (p *prattParser) parseExpression(precedence int) (expr.Expr, error) {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		err := fmt.Errorf("no prefix parse function for token %s (%q)", p.curToken.Type, p.curToken.Literal)
		p.addError("%s", err.Error())
		return expr.Undefined(), err
	}
	left, err := prefix()
	if err != nil {
		return expr.Undefined(), err
	}
	for p.peekToken.Type != EOF && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left, nil
		}
		p.nextToken()
		left, err = infix(left)
		if err != nil {
			return expr.Undefined(), err
		}
	}
	return left, nil
}

func (p *prattParser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *prattParser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *prattParser) registerPrefix(t TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *prattParser) registerInfix(t TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

// parseIdentifier resolves the reserved symbols (Undefined, I, True,
// False) the way original_source's parse_symbol does, then falls back to
// a plain Symbol. A following '(' is handled by parseCallExpression, which
// turns that Symbol into a Func/Union/Intersection/Difference/Member call.
func (p *prattParser) parseIdentifier() (expr.Expr, error) {
	name := p.curToken.Literal
	switch name {
	case "Undefined":
		return expr.Undefined(), nil
	case "I":
		return expr.GaussianOf(expr.Int(0), expr.Int(1)), nil
	case "True":
		return expr.Bool(true), nil
	case "False":
		return expr.Bool(false), nil
	default:
		return expr.Sym(name), nil
	}
}

func (p *prattParser) parseCallExpression(left expr.Expr) (expr.Expr, error) {
	if left.Kind != expr.KindSymbol {
		return expr.Undefined(), fmt.Errorf("cannot call a non-symbol expression")
	}
	name := left.Name
	args, err := p.parseCallArguments()
	if err != nil {
		return expr.Undefined(), err
	}
	switch name {
	case "Union":
		return expr.Union(args...), nil
	case "Intersection":
		return expr.Intersection(args...), nil
	case "Difference":
		if len(args) != 2 {
			return expr.Undefined(), fmt.Errorf("Difference expects 2 arguments, got %d", len(args))
		}
		return expr.SetDifference(args[0], args[1]), nil
	case "Member":
		if len(args) != 2 {
			return expr.Undefined(), fmt.Errorf("Member expects 2 arguments, got %d", len(args))
		}
		return expr.Member(args[0], args[1]), nil
	default:
		return expr.FuncCall(name, args...), nil
	}
}

func (p *prattParser) parseCallArguments() ([]expr.Expr, error) {
	var args []expr.Expr
	if p.peekToken.Type == RPAREN {
		p.nextToken()
		return args, nil
	}
	p.nextToken()
	a, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	args = append(args, a)
	for p.peekToken.Type == COMMA {
		p.nextToken()
		p.nextToken()
		a, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if !p.expectPeek(RPAREN) {
		return nil, fmt.Errorf("missing closing parenthesis in argument list")
	}
	return args, nil
}

func (p *prattParser) parseNumberLiteral() (expr.Expr, error) {
	n, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		err = fmt.Errorf("could not parse %q as integer: %w", p.curToken.Literal, err)
		p.addError("%s", err.Error())
		return expr.Undefined(), err
	}
	return expr.Int(n), nil
}

// parsePrefixExpression turns unary minus into (-1)*x, exactly as
// original_source's map_prefix does for Rule::neg.
func (p *prattParser) parsePrefixExpression() (expr.Expr, error) {
	p.nextToken()
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return expr.Undefined(), err
	}
	return expr.Product(expr.Int(-1), right), nil
}

func (p *prattParser) parseNotExpression() (expr.Expr, error) {
	p.nextToken()
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return expr.Undefined(), err
	}
	return expr.Not(right), nil
}

func (p *prattParser) parseFactorialExpression(left expr.Expr) (expr.Expr, error) {
	return expr.Factorial(left), nil
}

func (p *prattParser) parseInfixExpression(left expr.Expr) (expr.Expr, error) {
	op := p.curToken.Type
	precedence := p.curPrecedence()
	p.nextToken()
	// ^ and \ are right-associative, like original_source's Assoc::Right.
	if op == CARET || op == BACKSLASH {
		precedence--
	}
	right, err := p.parseExpression(precedence)
	if err != nil {
		return expr.Undefined(), err
	}
	switch op {
	case PLUS:
		return expr.Sum(left, right), nil
	case MINUS:
		return expr.Difference(left, right), nil
	case ASTERISK:
		return expr.Product(left, right), nil
	case SLASH:
		return expr.Quotient(left, right), nil
	case CARET:
		return expr.Power(left, right), nil
	case BACKSLASH:
		return expr.SetDifference(left, right), nil
	case OR:
		return expr.Or(left, right), nil
	case AND:
		return expr.And(left, right), nil
	default:
		return expr.Undefined(), fmt.Errorf("unhandled infix operator %s", op)
	}
}

func (p *prattParser) parseGroupedExpression() (expr.Expr, error) {
	p.nextToken()
	e, err := p.parseExpression(LOWEST)
	if err != nil {
		return expr.Undefined(), err
	}
	if !p.expectPeek(RPAREN) {
		return expr.Undefined(), fmt.Errorf("missing closing parenthesis")
	}
	return e, nil
}

func (p *prattParser) parseSetLiteral() (expr.Expr, error) {
	var ops []expr.Expr
	if p.peekToken.Type == RBRACE {
		p.nextToken()
		return expr.Set(), nil
	}
	p.nextToken()
	e, err := p.parseExpression(LOWEST)
	if err != nil {
		return expr.Undefined(), err
	}
	ops = append(ops, e)
	for p.peekToken.Type == COMMA {
		p.nextToken()
		p.nextToken()
		e, err := p.parseExpression(LOWEST)
		if err != nil {
			return expr.Undefined(), err
		}
		ops = append(ops, e)
	}
	if !p.expectPeek(RBRACE) {
		return expr.Undefined(), fmt.Errorf("missing closing brace in set literal")
	}
	return expr.Set(ops...), nil
}

// Parser is the stateless handle callers hold across many parses, mirroring
// the teacher's NewParser() (a bare struct, re-armed per call rather than
// carrying lexer state between calls).
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

// Parse parses source as a single expression (no assignment, no command).
func (*Parser) Parse(source string) (expr.Expr, error) {
	line, err := ParseLine(source)
	if err != nil {
		return expr.Undefined(), err
	}
	if line.Expr == nil {
		return expr.Undefined(), fmt.Errorf("input is not a bare expression")
	}
	return *line.Expr, nil
}

// ParseLine parses source as a REPL line (expression, assignment,
// command, or blank).
func (*Parser) ParseLine(source string) (Line, error) {
	return ParseLine(source)
}
