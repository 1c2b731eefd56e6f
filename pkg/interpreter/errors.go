package interpreter

import (
	"errors"
	"fmt"

	"midlang/interpreter-go/pkg/ast"
)

// ErrorKind classifies evaluation failures.
type ErrorKind string

const (
	ErrUndefinedVariable ErrorKind = "undefined-variable"
	ErrTypeMismatch      ErrorKind = "type-mismatch"
	ErrDivisionByZero    ErrorKind = "division-by-zero"
	ErrInvalidInput      ErrorKind = "invalid-input"
	ErrIO                ErrorKind = "io"

	// ErrInternal marks malformed trees that the parser never produces.
	ErrInternal ErrorKind = "internal"
)

// EvalError is the fatal error that stops a program run. Location is the
// start of the node being evaluated when the failure occurred; it is zero for
// hand-built trees without spans.
type EvalError struct {
	Kind     ErrorKind
	Message  string
	Location ast.Position
	err      error
}

func (e *EvalError) Error() string {
	if e.Location.IsZero() {
		return "runtime: " + e.Message
	}
	return fmt.Sprintf("runtime: %s at line %d, column %d", e.Message, e.Location.Line, e.Location.Column)
}

func (e *EvalError) Unwrap() error {
	return e.err
}

func newEvalError(node ast.Node, kind ErrorKind, format string, args ...any) *EvalError {
	evalErr := &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if node != nil {
		evalErr.Location = node.Span().Start
	}
	return evalErr
}

func wrapEvalError(node ast.Node, kind ErrorKind, err error, format string, args ...any) *EvalError {
	evalErr := newEvalError(node, kind, format, args...)
	evalErr.err = err
	return evalErr
}

// ErrorKindOf returns the kind of an *EvalError anywhere in err's chain.
func ErrorKindOf(err error) (ErrorKind, bool) {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Kind, true
	}
	return "", false
}
