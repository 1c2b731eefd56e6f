package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// Lexer scans source text into tokens, one rune of lookahead at a time.
type Lexer struct {
	src    []rune
	pos    int
	line   int
	column int
}

// New returns a lexer positioned at the start of source.
func New(source string) *Lexer {
	return &Lexer{src: []rune(source), line: 1, column: 1}
}

// Tokenize scans source left to right and returns the token stream. Scanning
// stops at the first invalid token; the stream always ends with KindEOF.
func Tokenize(source string) []Token {
	return New(source).Tokenize()
}

// Scan tokenizes source and reports a *LexError when the stream contains an
// invalid token.
func Scan(source string) ([]Token, error) {
	tokens := Tokenize(source)
	for _, tok := range tokens {
		if tok.Kind == KindInvalid {
			return tokens, NewLexError(tok)
		}
	}
	return tokens, nil
}

// Tokenize drains the lexer.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, len(l.src)/2+1)
	for {
		l.skipWhitespace()
		if l.atEnd() {
			break
		}
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Kind == KindInvalid {
			break
		}
	}
	return append(tokens, Token{Kind: KindEOF, Line: l.line, Column: l.column})
}

func (l *Lexer) next() Token {
	start, line, column := l.pos, l.line, l.column
	ch := l.advance()

	simple := func(kind Kind) Token {
		return l.token(kind, start, line, column)
	}

	switch ch {
	case '+':
		return simple(KindPlus)
	case '-':
		return simple(KindMinus)
	case '*':
		return simple(KindStar)
	case '/':
		return simple(KindSlash)
	case ';':
		return simple(KindSemicolon)
	case '(':
		return simple(KindLeftParen)
	case ')':
		return simple(KindRightParen)
	case '{':
		return simple(KindLeftBrace)
	case '}':
		return simple(KindRightBrace)
	case '=':
		if l.match('=') {
			return simple(KindEqualEqual)
		}
		return simple(KindAssign)
	case '!':
		if l.match('=') {
			return simple(KindNotEqual)
		}
		return l.invalid(start, line, column, "unexpected character '!'")
	case '<':
		if l.match('=') {
			return simple(KindLessEqual)
		}
		return simple(KindLess)
	case '>':
		if l.match('=') {
			return simple(KindGreaterEqual)
		}
		return simple(KindGreater)
	case '"':
		return l.readString(start, line, column)
	case '\'':
		return l.readChar(start, line, column)
	}

	switch {
	case isDigit(ch):
		for isDigit(l.peek()) {
			l.advance()
		}
		return simple(KindInteger)
	case isIdentifierStart(ch):
		for isIdentifierPart(l.peek()) {
			l.advance()
		}
		tok := simple(KindIdentifier)
		tok.Kind = LookupIdentifier(tok.Lexeme)
		return tok
	}
	return l.invalid(start, line, column, fmt.Sprintf("unexpected character %q", ch))
}

func (l *Lexer) readString(start, line, column int) Token {
	var sb strings.Builder
	for {
		if l.atEnd() {
			return l.invalid(start, line, column, "unterminated string literal")
		}
		switch ch := l.peek(); ch {
		case '"':
			l.advance()
			tok := l.token(KindString, start, line, column)
			tok.Literal = sb.String()
			return tok
		case '\n':
			return l.invalid(start, line, column, "unterminated string literal (newline in string)")
		case '\\':
			l.advance()
			if l.atEnd() {
				return l.invalid(start, line, column, "unterminated string literal")
			}
			sb.WriteRune(unescape(l.advance()))
		default:
			sb.WriteRune(l.advance())
		}
	}
}

func (l *Lexer) readChar(start, line, column int) Token {
	var value rune
	switch ch := l.peek(); {
	case l.atEnd(), ch == '\n':
		return l.invalid(start, line, column, "unterminated character literal")
	case ch == '\'':
		l.advance()
		return l.invalid(start, line, column, "empty character literal")
	case ch == '\\':
		l.advance()
		if l.atEnd() {
			return l.invalid(start, line, column, "unterminated character literal")
		}
		value = unescape(l.advance())
	default:
		value = l.advance()
	}
	if !l.match('\'') {
		return l.invalid(start, line, column, "unterminated character literal")
	}
	tok := l.token(KindChar, start, line, column)
	tok.Literal = string(value)
	return tok
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		// \\ \" \' map to themselves, as does any unknown escape.
		return ch
	}
}

func (l *Lexer) token(kind Kind, start, line, column int) Token {
	lexeme := string(l.src[start:l.pos])
	return Token{Kind: kind, Lexeme: lexeme, Literal: lexeme, Line: line, Column: column}
}

func (l *Lexer) invalid(start, line, column int, message string) Token {
	return Token{
		Kind:    KindInvalid,
		Lexeme:  string(l.src[start:l.pos]),
		Literal: message,
		Line:    line,
		Column:  column,
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() rune {
	if l.atEnd() {
		return 0
	}
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) match(expected rune) bool {
	if l.atEnd() || l.src[l.pos] != expected {
		return false
	}
	l.advance()
	return true
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentifierStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentifierPart(ch rune) bool {
	return isIdentifierStart(ch) || unicode.IsDigit(ch)
}
