package driver

import (
	"io"

	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/interpreter"
	"midlang/interpreter-go/pkg/lexer"
	"midlang/interpreter-go/pkg/parser"
)

// Options configures a pipeline run.
type Options struct {
	// Input feeds inputInt() and inputString(); nil means empty input.
	Input io.Reader
	// Output receives print and println output; nil discards it.
	Output io.Writer
	// Path labels errors returned by Run; see SourceError.
	Path string
}

// SourceError attaches the source path to a pipeline failure. The stage
// error stays reachable through errors.As.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Compile tokenizes and parses source without running it.
func Compile(source string) (*ast.Program, error) {
	tokens, err := lexer.Scan(source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Run executes source end to end. It returns nil after every statement ran,
// or the first *lexer.LexError, *parser.ParseError or *interpreter.EvalError,
// wrapped in a *SourceError when opts.Path is set. Nothing is evaluated
// unless tokenizing and parsing both succeed.
func Run(source string, opts Options) error {
	program, err := Compile(source)
	if err == nil {
		interp := interpreter.New(interpreter.Config{
			Input:  interpreter.NewLineReader(opts.Input),
			Output: opts.Output,
		})
		err = interp.Evaluate(program)
	}
	if err != nil && opts.Path != "" {
		return &SourceError{Path: opts.Path, Err: err}
	}
	return err
}
