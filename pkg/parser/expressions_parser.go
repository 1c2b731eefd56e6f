package parser

import (
	"fmt"
	"strconv"

	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/lexer"
)

var comparisonOperators = map[lexer.Kind]ast.ComparisonOperator{
	lexer.KindEqualEqual:   ast.CmpEqual,
	lexer.KindNotEqual:     ast.CmpNotEqual,
	lexer.KindLess:         ast.CmpLess,
	lexer.KindGreater:      ast.CmpGreater,
	lexer.KindLessEqual:    ast.CmpLessEqual,
	lexer.KindGreaterEqual: ast.CmpGreaterEqual,
}

// parseComparison parses Expr CompOp Expr. Exactly one operator is allowed.
func (p *Parser) parseComparison() (*ast.Comparison, error) {
	start := p.peek()
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOperators[p.peek().Kind]
	if !ok {
		return nil, newParseError(p.peek(), "comparison operator",
			"Expected comparison operator (==, !=, <, >, <=, >=)")
	}
	p.advance()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	cmp := ast.NewComparison(op, left, right)
	p.annotate(cmp, start)
	return cmp, nil
}

// parseExpression handles + and -, the lowest precedence level.
func (p *Parser) parseExpression() (ast.Expression, error) {
	start := p.peek()
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.KindPlus, lexer.KindMinus) {
		op := ast.ArithmeticOperator(p.previous().Lexeme)
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		bin := ast.NewBinaryExpression(op, expr, right)
		p.annotate(bin, start)
		expr = bin
	}
	return expr, nil
}

// parseTerm handles * and /.
func (p *Parser) parseTerm() (ast.Expression, error) {
	start := p.peek()
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.KindStar, lexer.KindSlash) {
		op := ast.ArithmeticOperator(p.previous().Lexeme)
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		bin := ast.NewBinaryExpression(op, expr, right)
		p.annotate(bin, start)
		expr = bin
	}
	return expr, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	start := p.peek()
	var expr ast.Expression
	switch {
	case p.match(lexer.KindInteger):
		value, err := strconv.ParseInt(start.Lexeme, 10, 32)
		if err != nil {
			return nil, newParseError(start, "integer literal",
				fmt.Sprintf("Integer literal %s is out of range", start.Lexeme))
		}
		expr = ast.NewIntegerLiteral(int32(value))
	case p.match(lexer.KindString):
		expr = ast.NewStringLiteral(start.Literal)
	case p.match(lexer.KindChar):
		expr = ast.NewCharLiteral(start.Literal)
	case p.match(lexer.KindIdentifier):
		expr = ast.NewVariableReference(start.Lexeme)
	case p.match(lexer.KindInputInt):
		if err := p.consumeEmptyCall("inputInt"); err != nil {
			return nil, err
		}
		expr = ast.NewInputIntExpression()
	case p.match(lexer.KindInputString):
		if err := p.consumeEmptyCall("inputString"); err != nil {
			return nil, err
		}
		expr = ast.NewInputStringExpression()
	case p.match(lexer.KindLeftParen):
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.KindRightParen, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, newParseError(start, "expression", "Expected expression")
	}
	p.annotate(expr, start)
	return expr, nil
}

func (p *Parser) consumeEmptyCall(name string) error {
	if _, err := p.consume(lexer.KindLeftParen, "Expected '(' after '"+name+"'"); err != nil {
		return err
	}
	_, err := p.consume(lexer.KindRightParen, "Expected ')' after '('")
	return err
}
