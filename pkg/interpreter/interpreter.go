package interpreter

import (
	"io"

	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/runtime"
)

// Config wires the interpreter to its console. A nil Input behaves as empty
// input and a nil Output discards everything written.
type Config struct {
	Input  InputSource
	Output io.Writer
}

// Interpreter walks a program tree. Each instance owns one environment for
// the lifetime of a run; instances share no state.
type Interpreter struct {
	global *runtime.Environment
	input  InputSource
	output io.Writer
}

// New returns an interpreter with an empty global environment.
func New(cfg Config) *Interpreter {
	input := cfg.Input
	if input == nil {
		input = NewLineReader(nil)
	}
	output := cfg.Output
	if output == nil {
		output = io.Discard
	}
	return &Interpreter{
		global: runtime.NewEnvironment(),
		input:  input,
		output: output,
	}
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Evaluate executes the program's statements in order. The first error stops
// the run and is returned as an *EvalError.
func (i *Interpreter) Evaluate(program *ast.Program) error {
	if program == nil {
		return newEvalError(nil, ErrInternal, "program is nil")
	}
	return i.evaluateStatements(program.Body)
}
