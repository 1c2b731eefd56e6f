package interpreter

import (
	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/runtime"
)

// applyArithmetic evaluates + - * / on already evaluated operands. + with a
// string on either side concatenates; everything else is int32 arithmetic
// with two's-complement wraparound.
func applyArithmetic(expr *ast.BinaryExpression, left, right runtime.Value) (runtime.Value, error) {
	if expr.Operator == ast.OpAdd && (isString(left) || isString(right)) {
		return runtime.StringValue{Val: runtime.ToText(left) + runtime.ToText(right)}, nil
	}
	lv, lok := left.(runtime.IntegerValue)
	rv, rok := right.(runtime.IntegerValue)
	if !lok || !rok {
		return nil, newEvalError(expr, ErrTypeMismatch,
			"Operator '%s' requires integer operands, got %s and %s", expr.Operator, left.Kind(), right.Kind())
	}
	switch expr.Operator {
	case ast.OpAdd:
		return runtime.IntegerValue{Val: lv.Val + rv.Val}, nil
	case ast.OpSub:
		return runtime.IntegerValue{Val: lv.Val - rv.Val}, nil
	case ast.OpMul:
		return runtime.IntegerValue{Val: lv.Val * rv.Val}, nil
	case ast.OpDiv:
		if rv.Val == 0 {
			return nil, newEvalError(expr, ErrDivisionByZero, "Division by zero")
		}
		// Go defines MinInt32 / -1 as MinInt32, matching wraparound.
		return runtime.IntegerValue{Val: lv.Val / rv.Val}, nil
	default:
		return nil, newEvalError(expr, ErrTypeMismatch, "Unknown operator: %s", expr.Operator)
	}
}

// applyComparison compares two integers. Strings and mixed kinds are a type
// mismatch.
func applyComparison(cmp *ast.Comparison, left, right runtime.Value) (bool, error) {
	lv, lok := left.(runtime.IntegerValue)
	rv, rok := right.(runtime.IntegerValue)
	if !lok || !rok {
		return false, newEvalError(cmp, ErrTypeMismatch,
			"Comparison '%s' requires integer operands, got %s and %s", cmp.Operator, left.Kind(), right.Kind())
	}
	switch cmp.Operator {
	case ast.CmpEqual:
		return lv.Val == rv.Val, nil
	case ast.CmpNotEqual:
		return lv.Val != rv.Val, nil
	case ast.CmpLess:
		return lv.Val < rv.Val, nil
	case ast.CmpGreater:
		return lv.Val > rv.Val, nil
	case ast.CmpLessEqual:
		return lv.Val <= rv.Val, nil
	case ast.CmpGreaterEqual:
		return lv.Val >= rv.Val, nil
	default:
		return false, newEvalError(cmp, ErrTypeMismatch, "Unknown comparison operator: %s", cmp.Operator)
	}
}

func isString(v runtime.Value) bool {
	_, ok := v.(runtime.StringValue)
	return ok
}
