package parser

import (
	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	start := p.peek()
	var (
		stmt ast.Statement
		err  error
	)
	switch {
	case p.match(lexer.KindVar):
		stmt, err = p.parseVarDeclaration()
	case p.match(lexer.KindPrint):
		stmt, err = p.parsePrint(false)
	case p.match(lexer.KindPrintln):
		stmt, err = p.parsePrint(true)
	case p.match(lexer.KindIf):
		stmt, err = p.parseIf()
	case p.match(lexer.KindWhile):
		stmt, err = p.parseWhile()
	default:
		stmt, err = p.parseAssignment()
	}
	if err != nil {
		return nil, err
	}
	p.annotate(stmt, start)
	return stmt, nil
}

func (p *Parser) parseVarDeclaration() (ast.Statement, error) {
	name, err := p.consume(lexer.KindIdentifier, "Expected variable name after 'var'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindAssign, "Expected '=' after variable name"); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindSemicolon, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(name.Lexeme, init), nil
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	name, err := p.consume(lexer.KindIdentifier, "Expected statement")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindAssign, "Expected '=' after variable name"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindSemicolon, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return ast.NewAssignment(name.Lexeme, value), nil
}

func (p *Parser) parsePrint(newline bool) (ast.Statement, error) {
	keyword := "print"
	if newline {
		keyword = "println"
	}
	if _, err := p.consume(lexer.KindLeftParen, "Expected '(' after '"+keyword+"'"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindRightParen, "Expected ')' after expression"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindSemicolon, "Expected ';' after ')'"); err != nil {
		return nil, err
	}
	if newline {
		return ast.NewPrintLineStatement(expr), nil
	}
	return ast.NewPrintStatement(expr), nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	cond, err := p.parseCondition("if")
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock("if block")
	if err != nil {
		return nil, err
	}
	var otherwise *ast.Block
	if p.match(lexer.KindElse) {
		otherwise, err = p.parseBlock("else block")
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(cond, then, otherwise), nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	cond, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock("while block")
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(cond, body), nil
}

// parseCondition parses "(" Comparison ")" after an if or while keyword.
func (p *Parser) parseCondition(keyword string) (*ast.Comparison, error) {
	if _, err := p.consume(lexer.KindLeftParen, "Expected '(' after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KindRightParen, "Expected ')' after condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseBlock(label string) (*ast.Block, error) {
	start := p.peek()
	if _, err := p.consume(lexer.KindLeftBrace, "Expected '{' to open "+label); err != nil {
		return nil, err
	}
	body := make([]ast.Statement, 0)
	for !p.check(lexer.KindRightBrace) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.consume(lexer.KindRightBrace, "Expected '}' after "+label); err != nil {
		return nil, err
	}
	block := ast.NewBlock(body)
	p.annotate(block, start)
	return block, nil
}
