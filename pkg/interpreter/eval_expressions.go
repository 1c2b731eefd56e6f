package interpreter

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.CharLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.VariableReference:
		val, err := i.global.Get(n.Name)
		if err != nil {
			return nil, wrapEvalError(n, ErrUndefinedVariable, err, "%s", err.Error())
		}
		return val, nil
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n)
	case *ast.InputIntExpression:
		return i.evaluateInputInt(n)
	case *ast.InputStringExpression:
		return i.evaluateInputString(n)
	case nil:
		return nil, newEvalError(nil, ErrInternal, "nil expression")
	default:
		return nil, newEvalError(n, ErrInternal, "unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	return applyArithmetic(expr, left, right)
}

func (i *Interpreter) evaluateComparison(cmp *ast.Comparison) (bool, error) {
	if cmp == nil {
		return false, newEvalError(nil, ErrInternal, "missing condition")
	}
	left, err := i.evaluateExpression(cmp.Left)
	if err != nil {
		return false, err
	}
	right, err := i.evaluateExpression(cmp.Right)
	if err != nil {
		return false, err
	}
	return applyComparison(cmp, left, right)
}

func (i *Interpreter) evaluateInputInt(expr *ast.InputIntExpression) (runtime.Value, error) {
	line, err := i.input.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, wrapEvalError(expr, ErrIO, err, "read input: %v", err)
	}
	text := strings.TrimSpace(line)
	n, parseErr := strconv.ParseInt(text, 10, 32)
	if parseErr != nil {
		return nil, wrapEvalError(expr, ErrInvalidInput, parseErr, "Invalid integer input: '%s'", line)
	}
	return runtime.IntegerValue{Val: int32(n)}, nil
}

func (i *Interpreter) evaluateInputString(expr *ast.InputStringExpression) (runtime.Value, error) {
	line, err := i.input.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return runtime.StringValue{Val: ""}, nil
		}
		return nil, wrapEvalError(expr, ErrIO, err, "read input: %v", err)
	}
	return runtime.StringValue{Val: line}, nil
}
