package ast

type NodeType string

const (
	NodeProgram               NodeType = "Program"
	NodeBlock                 NodeType = "Block"
	NodeVarDeclaration        NodeType = "VarDeclaration"
	NodeAssignment            NodeType = "Assignment"
	NodePrintStatement        NodeType = "PrintStatement"
	NodePrintLineStatement    NodeType = "PrintLineStatement"
	NodeIfStatement           NodeType = "IfStatement"
	NodeWhileStatement        NodeType = "WhileStatement"
	NodeIntegerLiteral        NodeType = "IntegerLiteral"
	NodeStringLiteral         NodeType = "StringLiteral"
	NodeCharLiteral           NodeType = "CharLiteral"
	NodeVariableReference     NodeType = "VariableReference"
	NodeBinaryExpression      NodeType = "BinaryExpression"
	NodeComparison            NodeType = "Comparison"
	NodeInputIntExpression    NodeType = "InputIntExpression"
	NodeInputStringExpression NodeType = "InputStringExpression"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces. Both families are closed: only types in this package
// carry the unexported markers.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Program is the root of the tree.

type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Block is a braced statement sequence owned by an if or while statement.
type Block struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewBlock(body []Statement) *Block {
	return &Block{nodeImpl: newNodeImpl(NodeBlock), Body: body}
}

// Statements

type VarDeclaration struct {
	nodeImpl
	statementMarker

	Name string     `json:"name"`
	Init Expression `json:"init"`
}

func NewVarDeclaration(name string, init Expression) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name, Init: init}
}

type Assignment struct {
	nodeImpl
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignment(name string, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrintStatement(expr Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expression: expr}
}

type PrintLineStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrintLineStatement(expr Expression) *PrintLineStatement {
	return &PrintLineStatement{nodeImpl: newNodeImpl(NodePrintLineStatement), Expression: expr}
}

// IfStatement holds an optional else block; a nil ElseBlock means no else
// clause was written.
type IfStatement struct {
	nodeImpl
	statementMarker

	Condition *Comparison `json:"condition"`
	ThenBlock *Block      `json:"thenBlock"`
	ElseBlock *Block      `json:"elseBlock,omitempty"`
}

func NewIfStatement(cond *Comparison, then *Block, otherwise *Block) *IfStatement {
	return &IfStatement{
		nodeImpl:  newNodeImpl(NodeIfStatement),
		Condition: cond,
		ThenBlock: then,
		ElseBlock: otherwise,
	}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition *Comparison `json:"condition"`
	Body      *Block      `json:"body"`
}

func NewWhileStatement(cond *Comparison, body *Block) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: cond, Body: body}
}

// Expressions

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int32 `json:"value"`
}

func NewIntegerLiteral(value int32) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

// CharLiteral holds a single character; it evaluates exactly like a string
// literal.
type CharLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewCharLiteral(value string) *CharLiteral {
	return &CharLiteral{nodeImpl: newNodeImpl(NodeCharLiteral), Value: value}
}

type VariableReference struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewVariableReference(name string) *VariableReference {
	return &VariableReference{nodeImpl: newNodeImpl(NodeVariableReference), Name: name}
}

type ArithmeticOperator string

const (
	OpAdd ArithmeticOperator = "+"
	OpSub ArithmeticOperator = "-"
	OpMul ArithmeticOperator = "*"
	OpDiv ArithmeticOperator = "/"
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator ArithmeticOperator `json:"operator"`
	Left     Expression         `json:"left"`
	Right    Expression         `json:"right"`
}

func NewBinaryExpression(op ArithmeticOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{
		nodeImpl: newNodeImpl(NodeBinaryExpression),
		Operator: op,
		Left:     left,
		Right:    right,
	}
}

type InputIntExpression struct {
	nodeImpl
	expressionMarker
}

func NewInputIntExpression() *InputIntExpression {
	return &InputIntExpression{nodeImpl: newNodeImpl(NodeInputIntExpression)}
}

type InputStringExpression struct {
	nodeImpl
	expressionMarker
}

func NewInputStringExpression() *InputStringExpression {
	return &InputStringExpression{nodeImpl: newNodeImpl(NodeInputStringExpression)}
}

// Conditions

type ComparisonOperator string

const (
	CmpEqual        ComparisonOperator = "=="
	CmpNotEqual     ComparisonOperator = "!="
	CmpLess         ComparisonOperator = "<"
	CmpGreater      ComparisonOperator = ">"
	CmpLessEqual    ComparisonOperator = "<="
	CmpGreaterEqual ComparisonOperator = ">="
)

// Comparison is not an Expression: it only appears as the condition of an
// if or while statement and never nests.
type Comparison struct {
	nodeImpl

	Operator ComparisonOperator `json:"operator"`
	Left     Expression         `json:"left"`
	Right    Expression         `json:"right"`
}

func NewComparison(op ComparisonOperator, left, right Expression) *Comparison {
	return &Comparison{
		nodeImpl: newNodeImpl(NodeComparison),
		Operator: op,
		Left:     left,
		Right:    right,
	}
}
