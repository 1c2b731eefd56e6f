package lexer

import "fmt"

// Kind identifies the lexical category of a token.
type Kind int

const (
	KindEOF Kind = iota
	KindInvalid

	KindInteger
	KindString
	KindChar
	KindIdentifier

	// Keywords
	KindVar
	KindPrint
	KindPrintln
	KindIf
	KindElse
	KindWhile
	KindInputInt
	KindInputString

	// Arithmetic operators
	KindPlus
	KindMinus
	KindStar
	KindSlash

	// Comparison operators
	KindEqualEqual
	KindNotEqual
	KindLess
	KindGreater
	KindLessEqual
	KindGreaterEqual

	// Punctuation
	KindAssign
	KindSemicolon
	KindLeftParen
	KindRightParen
	KindLeftBrace
	KindRightBrace
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindInvalid:
		return "INVALID"
	case KindInteger:
		return "INTEGER"
	case KindString:
		return "STRING"
	case KindChar:
		return "CHAR"
	case KindIdentifier:
		return "IDENTIFIER"
	case KindVar:
		return "VAR"
	case KindPrint:
		return "PRINT"
	case KindPrintln:
		return "PRINTLN"
	case KindIf:
		return "IF"
	case KindElse:
		return "ELSE"
	case KindWhile:
		return "WHILE"
	case KindInputInt:
		return "INPUT_INT"
	case KindInputString:
		return "INPUT_STRING"
	case KindPlus:
		return "PLUS"
	case KindMinus:
		return "MINUS"
	case KindStar:
		return "MULTIPLY"
	case KindSlash:
		return "DIVIDE"
	case KindEqualEqual:
		return "EQUAL_EQUAL"
	case KindNotEqual:
		return "NOT_EQUAL"
	case KindLess:
		return "LESS"
	case KindGreater:
		return "GREATER"
	case KindLessEqual:
		return "LESS_EQUAL"
	case KindGreaterEqual:
		return "GREATER_EQUAL"
	case KindAssign:
		return "ASSIGN"
	case KindSemicolon:
		return "SEMICOLON"
	case KindLeftParen:
		return "LEFT_PAREN"
	case KindRightParen:
		return "RIGHT_PAREN"
	case KindLeftBrace:
		return "LEFT_BRACE"
	case KindRightBrace:
		return "RIGHT_BRACE"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// IsKeyword reports whether the kind is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KindVar && k <= KindInputString
}

// IsComparison reports whether the kind is one of == != < > <= >=.
func (k Kind) IsComparison() bool {
	return k >= KindEqualEqual && k <= KindGreaterEqual
}

var keywords = map[string]Kind{
	"var":         KindVar,
	"print":       KindPrint,
	"println":     KindPrintln,
	"if":          KindIf,
	"else":        KindElse,
	"while":       KindWhile,
	"inputInt":    KindInputInt,
	"inputString": KindInputString,
}

// LookupIdentifier returns the keyword kind for text, or KindIdentifier.
func LookupIdentifier(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return KindIdentifier
}

// Token is a lexical unit pointing back to the source.
//
// Lexeme is the exact source slice, quotes included for string and char
// literals. Literal is the decoded text for string and char literals, the
// diagnostic message for invalid tokens, and the lexeme otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Literal)
}
