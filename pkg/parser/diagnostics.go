package parser

import (
	"fmt"

	"midlang/interpreter-go/pkg/lexer"
)

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParseError reports a structural mismatch: the token kind the grammar
// required and the token that was found instead.
type ParseError struct {
	Message  string
	Expected string
	Found    lexer.Token
	Location SourceLocation
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: %s at line %d, column %d. Found: %s",
		e.Message, e.Location.Line, e.Location.Column, describeToken(e.Found))
}

func newParseError(tok lexer.Token, expected, message string) *ParseError {
	return &ParseError{
		Message:  message,
		Expected: expected,
		Found:    tok,
		Location: locationForToken(tok),
	}
}

func locationForToken(tok lexer.Token) SourceLocation {
	width := len([]rune(tok.Lexeme))
	if width == 0 {
		width = 1
	}
	return SourceLocation{
		Line:      tok.Line,
		Column:    tok.Column,
		EndLine:   tok.Line,
		EndColumn: tok.Column + width,
	}
}

func describeToken(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindEOF:
		return tok.Kind.String()
	case lexer.KindIdentifier, lexer.KindInteger, lexer.KindString, lexer.KindChar:
		return fmt.Sprintf("%s %s", tok.Kind, tok.Lexeme)
	default:
		return tok.Kind.String()
	}
}
