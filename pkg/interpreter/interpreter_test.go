package interpreter

import (
	"errors"
	"io"
	"strings"
	"testing"

	"midlang/interpreter-go/pkg/ast"
	"midlang/interpreter-go/pkg/parser"
	"midlang/interpreter-go/pkg/runtime"
)

func run(t *testing.T, program *ast.Program, input ...string) (string, *Interpreter, error) {
	t.Helper()
	var out strings.Builder
	lines := Lines(input)
	interp := New(Config{Input: &lines, Output: &out})
	err := interp.Evaluate(program)
	return out.String(), interp, err
}

func runSource(t *testing.T, source string, input ...string) (string, error) {
	t.Helper()
	program, err := parser.ParseSource(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	out, _, err := run(t, program, input...)
	return out, err
}

func expectEvalError(t *testing.T, err error, kind ErrorKind) *EvalError {
	t.Helper()
	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvalError, got %v", err)
	}
	if evalErr.Kind != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, evalErr.Kind, evalErr)
	}
	return evalErr
}

func TestEvaluatePrecedence(t *testing.T) {
	program := ast.Prog(
		ast.Var("x", ast.Bin("+", ast.Int(2), ast.Bin("*", ast.Int(3), ast.Int(4)))),
		ast.Println(ast.ID("x")),
	)
	out, interp, err := run(t, program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "14\n" {
		t.Fatalf("expected 14, got %q", out)
	}
	got, _ := interp.GlobalEnvironment().Get("x")
	if got != (runtime.IntegerValue{Val: 14}) {
		t.Fatalf("expected x = 14, got %#v", got)
	}
}

func TestEvaluatePrintDoesNotAppendNewline(t *testing.T) {
	program := ast.Prog(
		ast.Print(ast.Str("a")),
		ast.Print(ast.Int(1)),
		ast.Println(ast.Chr("b")),
		ast.Println(ast.Str("")),
	)
	out, _, err := run(t, program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a1b\n\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateConcatenation(t *testing.T) {
	out, err := runSource(t, `
var n = 5;
println("n=" + n);
println(n + "!");
println(1 + 2 + "x");
println("x" + 1 + 2);
println('a' + 'b');
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "n=5\n5!\n3x\nx12\nab\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateArithmeticWraps(t *testing.T) {
	out, err := runSource(t, `
var max = 2147483647;
println(max + 1);
println(0 - max - 1 - 1);
println(65536 * 65536);
println(7 / 2);
println((0 - 7) / 2);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "-2147483648\n2147483647\n0\n3\n-3\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateMinIntDividedByMinusOneWraps(t *testing.T) {
	program := ast.Prog(
		ast.Var("min", ast.Bin("-", ast.Bin("-", ast.Int(0), ast.Int(2147483647)), ast.Int(1))),
		ast.Println(ast.Bin("/", ast.ID("min"), ast.Bin("-", ast.Int(0), ast.Int(1)))),
	)
	out, _, err := run(t, program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "-2147483648\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateDivisionByZeroStopsRun(t *testing.T) {
	out, err := runSource(t, "print(1);\nprint(1 / 0);\nprint(2);")
	evalErr := expectEvalError(t, err, ErrDivisionByZero)
	if out != "1" {
		t.Fatalf("expected output before the failure only, got %q", out)
	}
	if evalErr.Location.Line != 2 || evalErr.Location.Column != 7 {
		t.Fatalf("unexpected location %+v", evalErr.Location)
	}
	if evalErr.Error() != "runtime: Division by zero at line 2, column 7" {
		t.Fatalf("unexpected message %q", evalErr.Error())
	}
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	out, err := runSource(t, "println(ghost);")
	evalErr := expectEvalError(t, err, ErrUndefinedVariable)
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	var undefined runtime.UndefinedVariableError
	if !errors.As(err, &undefined) || undefined.Name != "ghost" {
		t.Fatalf("expected wrapped UndefinedVariableError, got %v", err)
	}
	if evalErr.Message != "Undefined variable 'ghost'" {
		t.Fatalf("unexpected message %q", evalErr.Message)
	}
}

func TestEvaluateAssignmentBeforeDeclarationCreatesBinding(t *testing.T) {
	out, err := runSource(t, "y = 3; var y = y + 1; println(y);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "4\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateTypeMismatch(t *testing.T) {
	for _, source := range []string{
		`var a = "x" - 1;`,
		`var a = 2 * "y";`,
		`var a = "x" / "y";`,
		`if ("a" == "a") { }`,
		`while (1 < "2") { }`,
	} {
		_, err := runSource(t, source)
		expectEvalError(t, err, ErrTypeMismatch)
	}
}

func TestEvaluateIfElse(t *testing.T) {
	program := ast.Prog(
		ast.Var("x", ast.Int(5)),
		ast.If(ast.Cmp(">", ast.ID("x"), ast.Int(3)),
			ast.Blk(ast.Println(ast.Str("big"))),
			ast.Blk(ast.Println(ast.Str("small"))),
		),
		ast.If(ast.Cmp("<", ast.ID("x"), ast.Int(3)),
			ast.Blk(ast.Println(ast.Str("never"))),
			nil,
		),
		ast.If(ast.Cmp("!=", ast.ID("x"), ast.Int(5)),
			ast.Blk(),
			ast.Blk(ast.Println(ast.Str("else"))),
		),
	)
	out, _, err := run(t, program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "big\nelse\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateComparisons(t *testing.T) {
	cases := map[string]bool{
		"==": false, "!=": true, "<": true, ">": false, "<=": true, ">=": false,
	}
	for op, want := range cases {
		program := ast.Prog(
			ast.If(ast.Cmp(op, ast.Int(1), ast.Int(2)),
				ast.Blk(ast.Print(ast.Str("t"))),
				ast.Blk(ast.Print(ast.Str("f"))),
			),
		)
		out, _, err := run(t, program)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", op, err)
		}
		if (out == "t") != want {
			t.Fatalf("1 %s 2: got %q", op, out)
		}
	}
}

func TestEvaluateWhileLoop(t *testing.T) {
	out, err := runSource(t, `
var i = 0;
var total = 0;
while (i < 5) {
  i = i + 1;
  total = total + i;
}
println(total);
while (i < 0) { println("never"); }
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "15\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateBlocksShareGlobalScope(t *testing.T) {
	out, err := runSource(t, "if (1 == 1) { var inner = 7; }\nprintln(inner);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateInputInt(t *testing.T) {
	out, err := runSource(t, "var n = inputInt(); println(n * 2);", "  21 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateInputIntRejectsGarbage(t *testing.T) {
	for _, line := range []string{"abc", "", "12x", "2147483648"} {
		_, err := runSource(t, "var n = inputInt();", line)
		evalErr := expectEvalError(t, err, ErrInvalidInput)
		if !strings.Contains(evalErr.Message, "Invalid integer input") {
			t.Fatalf("%q: unexpected message %q", line, evalErr.Message)
		}
	}
}

func TestEvaluateInputIntAtEndOfInput(t *testing.T) {
	_, err := runSource(t, "var n = inputInt();")
	expectEvalError(t, err, ErrInvalidInput)
}

func TestEvaluateInputString(t *testing.T) {
	out, err := runSource(t, `
var first = inputString();
var second = inputString();
var third = inputString();
println("[" + first + "|" + second + "|" + third + "]");
`, " Ada ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[ Ada ||]\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateReadsFromLineReader(t *testing.T) {
	program, err := parser.ParseSource("var a = inputInt(); var b = inputInt(); var s = inputString(); println(a + b + s);")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var out strings.Builder
	interp := New(Config{Input: NewLineReader(strings.NewReader("1\r\n2\ntail")), Output: &out})
	if err := interp.Evaluate(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "3tail\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestLineReaderReturnsEOF(t *testing.T) {
	reader := NewLineReader(nil)
	if _, err := reader.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEvaluateReportsWriteFailure(t *testing.T) {
	interp := New(Config{Output: failingWriter{}})
	err := interp.Evaluate(ast.Prog(ast.Println(ast.Int(1))))
	expectEvalError(t, err, ErrIO)
}

func TestEvaluateDefaultsDiscardOutput(t *testing.T) {
	interp := New(Config{})
	if err := interp.Evaluate(ast.Prog(ast.Println(ast.Str("quiet")))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInterpretersDoNotShareState(t *testing.T) {
	first := New(Config{})
	if err := first.Evaluate(ast.Prog(ast.Var("x", ast.Int(1)))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := New(Config{})
	err := second.Evaluate(ast.Prog(ast.Println(ast.ID("x"))))
	expectEvalError(t, err, ErrUndefinedVariable)
}

func TestEvaluateMalformedTreesReturnEvalError(t *testing.T) {
	err := New(Config{}).Evaluate(nil)
	expectEvalError(t, err, ErrInternal)

	_, _, err = run(t, ast.Prog(nil))
	expectEvalError(t, err, ErrInternal)

	_, _, err = run(t, ast.Prog(ast.Println(nil)))
	expectEvalError(t, err, ErrInternal)

	_, _, err = run(t, ast.Prog(ast.While(nil, ast.Blk())))
	evalErr := expectEvalError(t, err, ErrInternal)
	if evalErr.Error() != "runtime: missing condition" {
		t.Fatalf("unexpected message %q", evalErr.Error())
	}
}

func TestEvalErrorWithoutLocation(t *testing.T) {
	_, _, err := run(t, ast.Prog(ast.Println(ast.Bin("/", ast.Int(1), ast.Int(0)))))
	evalErr := expectEvalError(t, err, ErrDivisionByZero)
	if evalErr.Error() != "runtime: Division by zero" {
		t.Fatalf("unexpected message %q", evalErr.Error())
	}
	if kind, ok := ErrorKindOf(err); !ok || kind != ErrDivisionByZero {
		t.Fatalf("ErrorKindOf = %q, %v", kind, ok)
	}
}
