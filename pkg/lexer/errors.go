package lexer

import "fmt"

// LexError reports an invalid token: an unexpected character or an
// unterminated string or character literal.
type LexError struct {
	Message  string
	Fragment string
	Line     int
	Column   int
}

// NewLexError converts an invalid token into an error value.
func NewLexError(tok Token) *LexError {
	return &LexError{
		Message:  tok.Literal,
		Fragment: tok.Lexeme,
		Line:     tok.Line,
		Column:   tok.Column,
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer: %s at line %d, column %d", e.Message, e.Line, e.Column)
}
