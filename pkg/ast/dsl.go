package ast

// Program and block helpers.

func Prog(body ...Statement) *Program {
	return NewProgram(body)
}

func Blk(body ...Statement) *Block {
	return NewBlock(body)
}

// Statement helpers.

func Var(name string, init Expression) *VarDeclaration {
	return NewVarDeclaration(name, init)
}

func Assign(name string, value Expression) *Assignment {
	return NewAssignment(name, value)
}

func Print(expr Expression) *PrintStatement {
	return NewPrintStatement(expr)
}

func Println(expr Expression) *PrintLineStatement {
	return NewPrintLineStatement(expr)
}

func If(cond *Comparison, then *Block, otherwise *Block) *IfStatement {
	return NewIfStatement(cond, then, otherwise)
}

func While(cond *Comparison, body *Block) *WhileStatement {
	return NewWhileStatement(cond, body)
}

// Expression helpers.

func Int(value int32) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Chr(value string) *CharLiteral {
	return NewCharLiteral(value)
}

func ID(name string) *VariableReference {
	return NewVariableReference(name)
}

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(ArithmeticOperator(op), left, right)
}

func Cmp(op string, left, right Expression) *Comparison {
	return NewComparison(ComparisonOperator(op), left, right)
}

func InputInt() *InputIntExpression {
	return NewInputIntExpression()
}

func InputString() *InputStringExpression {
	return NewInputStringExpression()
}
