package interpreter

import (
	"io"

	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatements(body []ast.Statement) error {
	for _, stmt := range body {
		if err := i.evaluateStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluateStatement(node ast.Statement) error {
	switch n := node.(type) {
	case *ast.VarDeclaration:
		return i.bind(n.Name, n.Init, i.global.Define)
	case *ast.Assignment:
		return i.bind(n.Name, n.Value, i.global.Assign)
	case *ast.PrintStatement:
		return i.evaluatePrint(n, n.Expression, "")
	case *ast.PrintLineStatement:
		return i.evaluatePrint(n, n.Expression, "\n")
	case *ast.IfStatement:
		return i.evaluateIfStatement(n)
	case *ast.WhileStatement:
		return i.evaluateWhileStatement(n)
	case nil:
		return newEvalError(nil, ErrInternal, "nil statement")
	default:
		return newEvalError(n, ErrInternal, "unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) bind(name string, expr ast.Expression, store func(string, runtime.Value)) error {
	val, err := i.evaluateExpression(expr)
	if err != nil {
		return err
	}
	store(name, val)
	return nil
}

func (i *Interpreter) evaluatePrint(node ast.Statement, expr ast.Expression, suffix string) error {
	val, err := i.evaluateExpression(expr)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(i.output, runtime.ToText(val)+suffix); err != nil {
		return wrapEvalError(node, ErrIO, err, "write output: %v", err)
	}
	return nil
}

func (i *Interpreter) evaluateIfStatement(stmt *ast.IfStatement) error {
	ok, err := i.evaluateComparison(stmt.Condition)
	if err != nil {
		return err
	}
	if ok {
		return i.evaluateBlock(stmt.ThenBlock)
	}
	if stmt.ElseBlock == nil {
		return nil
	}
	return i.evaluateBlock(stmt.ElseBlock)
}

func (i *Interpreter) evaluateWhileStatement(loop *ast.WhileStatement) error {
	for {
		ok, err := i.evaluateComparison(loop.Condition)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := i.evaluateBlock(loop.Body); err != nil {
			return err
		}
	}
}

// evaluateBlock runs the block's statements in the global scope; blocks do
// not introduce scopes.
func (i *Interpreter) evaluateBlock(block *ast.Block) error {
	if block == nil {
		return nil
	}
	return i.evaluateStatements(block.Body)
}
