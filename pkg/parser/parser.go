package parser

import (
	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/lexer"
)

// Parser is a recursive-descent parser with one token of lookahead.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// ParseSource tokenizes and parses source in one step.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.Scan(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse builds a program tree from tokens. It stops at the first structural
// mismatch and never returns a partial tree. An invalid token in the stream is
// reported as the tokenizer's *lexer.LexError.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	for _, tok := range tokens {
		if tok.Kind == lexer.KindInvalid {
			return nil, lexer.NewLexError(tok)
		}
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.KindEOF {
		tokens = append(append([]lexer.Token(nil), tokens...), lexer.Token{Kind: lexer.KindEOF})
	}
	p := &Parser{tokens: tokens}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	start := p.peek()
	body := make([]ast.Statement, 0)
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	program := ast.NewProgram(body)
	p.annotate(program, start)
	return program, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == lexer.KindEOF
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.atEnd() {
		return kind == lexer.KindEOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind lexer.Kind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, newParseError(p.peek(), kind.String(), message)
}

// annotate records the span from start to the last consumed token.
func (p *Parser) annotate(node ast.Node, start lexer.Token) {
	end := p.previous()
	if p.current == 0 {
		end = start
	}
	ast.SetSpan(node, ast.Span{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   ast.Position{Line: end.Line, Column: end.Column},
	})
}
