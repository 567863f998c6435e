package interpreter

import (
	"fmt"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
)

func (self *Interpreter) expression(node *ast.Element) (*value.Value, *value.Interrupt) {
	if i := self.checkCancelation(node.Span()); i != nil {
		return nil, i
	}

	switch node.ElemType {
	case ast.IntNode:
		return value.NewValueInt(node.Get(ast.ValKey).(int64)), nil
	case ast.StringNode:
		return value.NewValueString(node.Get(ast.ValKey).(string)), nil
	case ast.BoolNode:
		return value.NewValueBool(node.Get(ast.ValKey).(bool)), nil
	case ast.NilNode:
		return value.NewValueNil(), nil
	case ast.VarNode:
		return self.lookup(node.Name(), node.Span())
	case ast.FCallNode:
		return self.callFunc(node)
	case ast.NegNode:
		return self.negation(node)
	case ast.NotNode:
		return self.logicalNot(node)
	}

	switch {
	case ast.IsArithmeticOperator(node.ElemType):
		return self.arithmetic(node)
	case ast.IsComparisonOperator(node.ElemType):
		return self.comparison(node)
	case ast.IsLogicalOperator(node.ElemType):
		return self.logical(node)
	default:
		panic(fmt.Sprintf("A new expression kind (%s) was introduced without updating this code", node.ElemType))
	}
}

// Evaluates both operands exactly once, the left one first.
func (self *Interpreter) operands(node *ast.Element) (value.Value, value.Value, *value.Interrupt) {
	lhs, i := self.expression(node.Child(ast.Op1Key))
	if i != nil {
		return nil, nil, i
	}

	rhs, i := self.expression(node.Child(ast.Op2Key))
	if i != nil {
		return nil, nil, i
	}

	return *lhs, *rhs, nil
}

//
// Prefix expressions
//

func (self *Interpreter) negation(node *ast.Element) (*value.Value, *value.Interrupt) {
	operand, i := self.expression(node.Child(ast.Op1Key))
	if i != nil {
		return nil, i
	}

	integer, ok := (*operand).(value.ValueInt)
	if !ok {
		return nil, value.NewRuntimeErr(
			fmt.Sprintf("Incompatible type for negation: expected int, found %s", (*operand).Kind()),
			value.TypeErrorKind,
			node.Span(),
		)
	}

	return value.NewValueInt(-integer.Inner), nil
}

func (self *Interpreter) logicalNot(node *ast.Element) (*value.Value, *value.Interrupt) {
	operand, i := self.expression(node.Child(ast.Op1Key))
	if i != nil {
		return nil, i
	}

	boolean, ok := (*operand).(value.ValueBool)
	if !ok {
		return nil, value.NewRuntimeErr(
			fmt.Sprintf("Incompatible type for logical not: expected bool, found %s", (*operand).Kind()),
			value.TypeErrorKind,
			node.Span(),
		)
	}

	return value.NewValueBool(!boolean.Inner), nil
}

//
// Infix expressions
//

func (self *Interpreter) arithmetic(node *ast.Element) (*value.Value, *value.Interrupt) {
	lhs, rhs, i := self.operands(node)
	if i != nil {
		return nil, i
	}

	// `+` doubles as string concatenation
	if node.ElemType == ast.PlusOp {
		lhsStr, lhsIsStr := lhs.(value.ValueString)
		rhsStr, rhsIsStr := rhs.(value.ValueString)
		if lhsIsStr && rhsIsStr {
			return value.NewValueString(lhsStr.Inner + rhsStr.Inner), nil
		}
	}

	lhsInt, lhsIsInt := lhs.(value.ValueInt)
	rhsInt, rhsIsInt := rhs.(value.ValueInt)
	if !lhsIsInt || !rhsIsInt {
		return nil, incompatibleOperands(node, "arithmetic", lhs, rhs)
	}

	switch node.ElemType {
	case ast.PlusOp:
		return value.NewValueInt(lhsInt.Inner + rhsInt.Inner), nil
	case ast.MinusOp:
		return value.NewValueInt(lhsInt.Inner - rhsInt.Inner), nil
	case ast.MultiplyOp:
		return value.NewValueInt(lhsInt.Inner * rhsInt.Inner), nil
	case ast.DivideOp:
		if rhsInt.Inner == 0 {
			return nil, value.NewRuntimeErr(
				"Division by zero",
				value.TypeErrorKind,
				node.Child(ast.Op2Key).Span(),
			)
		}
		return value.NewValueInt(floorDiv(lhsInt.Inner, rhsInt.Inner)), nil
	default:
		panic("A new arithmetic operator was added without updating this code")
	}
}

// Integer division which rounds towards negative infinity.
func floorDiv(lhs int64, rhs int64) int64 {
	quotient := lhs / rhs
	if lhs%rhs != 0 && (lhs < 0) != (rhs < 0) {
		quotient--
	}
	return quotient
}

// Values of different kinds are never equal, they cannot be ordered though.
// Nil has no ordering either.
func (self *Interpreter) comparison(node *ast.Element) (*value.Value, *value.Interrupt) {
	lhs, rhs, i := self.operands(node)
	if i != nil {
		return nil, i
	}

	switch node.ElemType {
	case ast.EqualOp:
		return value.NewValueBool(lhs.IsEqual(rhs)), nil
	case ast.NotEqualOp:
		return value.NewValueBool(!lhs.IsEqual(rhs)), nil
	}

	var ordering int
	switch lhsVal := lhs.(type) {
	case value.ValueInt:
		rhsVal, ok := rhs.(value.ValueInt)
		if !ok {
			return nil, incompatibleOperands(node, "comparison", lhs, rhs)
		}
		ordering = compare(lhsVal.Inner, rhsVal.Inner)
	case value.ValueString:
		rhsVal, ok := rhs.(value.ValueString)
		if !ok {
			return nil, incompatibleOperands(node, "comparison", lhs, rhs)
		}
		ordering = compare(lhsVal.Inner, rhsVal.Inner)
	case value.ValueBool:
		rhsVal, ok := rhs.(value.ValueBool)
		if !ok {
			return nil, incompatibleOperands(node, "comparison", lhs, rhs)
		}
		ordering = compare(boolRank(lhsVal.Inner), boolRank(rhsVal.Inner))
	default:
		return nil, incompatibleOperands(node, "comparison", lhs, rhs)
	}

	switch node.ElemType {
	case ast.LessOp:
		return value.NewValueBool(ordering < 0), nil
	case ast.LessEqualOp:
		return value.NewValueBool(ordering <= 0), nil
	case ast.GreaterOp:
		return value.NewValueBool(ordering > 0), nil
	case ast.GreaterEqualOp:
		return value.NewValueBool(ordering >= 0), nil
	default:
		panic("A new comparison operator was added without updating this code")
	}
}

// false orders before true
func boolRank(inner bool) int64 {
	if inner {
		return 1
	}
	return 0
}

func compare[T int64 | string](lhs T, rhs T) int {
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Both operands are always evaluated, there is no short-circuiting.
func (self *Interpreter) logical(node *ast.Element) (*value.Value, *value.Interrupt) {
	lhs, rhs, i := self.operands(node)
	if i != nil {
		return nil, i
	}

	lhsBool, lhsIsBool := lhs.(value.ValueBool)
	rhsBool, rhsIsBool := rhs.(value.ValueBool)
	if !lhsIsBool || !rhsIsBool {
		return nil, incompatibleOperands(node, "logical", lhs, rhs)
	}

	switch node.ElemType {
	case ast.AndOp:
		return value.NewValueBool(lhsBool.Inner && rhsBool.Inner), nil
	case ast.OrOp:
		return value.NewValueBool(lhsBool.Inner || rhsBool.Inner), nil
	default:
		panic("A new logical operator was added without updating this code")
	}
}

func incompatibleOperands(node *ast.Element, category string, lhs value.Value, rhs value.Value) *value.Interrupt {
	return value.NewRuntimeErr(
		fmt.Sprintf(
			"Incompatible types for %s operation: %s %s %s",
			category,
			lhs.Kind(),
			node.ElemType,
			rhs.Kind(),
		),
		value.TypeErrorKind,
		node.Span(),
	)
}
