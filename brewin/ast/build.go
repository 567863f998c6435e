package ast

import "github.com/brewin-lang/brewin/brewin/errors"

// Constructors for hosts which produce syntax trees without the parser.
// All created elements carry an empty span.

func NewProgram(functions ...*Element) *Element {
	return NewElement(ProgramNode, errors.Span{}).Set(FunctionsKey, functions)
}

func NewFunc(name string, params []string, statements ...*Element) *Element {
	args := make([]*Element, 0, len(params))
	for _, param := range params {
		args = append(args, NewElement(ArgNode, errors.Span{}).Set(NameKey, param))
	}

	return NewElement(FuncNode, errors.Span{}).
		Set(NameKey, name).
		Set(ArgsKey, args).
		Set(StatementsKey, statements)
}

func NewVarDef(name string) *Element {
	return NewElement(VarDefNode, errors.Span{}).Set(NameKey, name)
}

func NewAssign(name string, expression *Element) *Element {
	return NewElement(AssignNode, errors.Span{}).
		Set(NameKey, name).
		Set(ExpressionKey, expression)
}

func NewCall(name string, args ...*Element) *Element {
	return NewElement(FCallNode, errors.Span{}).
		Set(NameKey, name).
		Set(ArgsKey, args)
}

func NewIf(condition *Element, statements []*Element, elseStatements []*Element) *Element {
	node := NewElement(IfNode, errors.Span{}).
		Set(ConditionKey, condition).
		Set(StatementsKey, statements)

	if elseStatements != nil {
		node.Set(ElseStatementsKey, elseStatements)
	}
	return node
}

func NewFor(init *Element, condition *Element, update *Element, statements ...*Element) *Element {
	return NewElement(ForNode, errors.Span{}).
		Set(InitKey, init).
		Set(ConditionKey, condition).
		Set(UpdateKey, update).
		Set(StatementsKey, statements)
}

// `expression` may be nil for a bare `return;`
func NewReturn(expression *Element) *Element {
	node := NewElement(ReturnNode, errors.Span{})
	if expression != nil {
		node.Set(ExpressionKey, expression)
	}
	return node
}

func NewVar(name string) *Element {
	return NewElement(VarNode, errors.Span{}).Set(NameKey, name)
}

func NewInt(val int64) *Element {
	return NewElement(IntNode, errors.Span{}).Set(ValKey, val)
}

func NewString(val string) *Element {
	return NewElement(StringNode, errors.Span{}).Set(ValKey, val)
}

func NewBool(val bool) *Element {
	return NewElement(BoolNode, errors.Span{}).Set(ValKey, val)
}

func NewNil() *Element {
	return NewElement(NilNode, errors.Span{})
}

func NewNeg(operand *Element) *Element {
	return NewElement(NegNode, errors.Span{}).Set(Op1Key, operand)
}

func NewNot(operand *Element) *Element {
	return NewElement(NotNode, errors.Span{}).Set(Op1Key, operand)
}

func NewBinary(operator string, lhs *Element, rhs *Element) *Element {
	return NewElement(operator, errors.Span{}).
		Set(Op1Key, lhs).
		Set(Op2Key, rhs)
}
