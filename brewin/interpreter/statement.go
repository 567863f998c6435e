package interpreter

import (
	"fmt"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
)

// Executes statements in order until one of them interrupts.
// A nil result means that every statement completed normally.
func (self *Interpreter) statements(nodes []*ast.Element) *value.Interrupt {
	for _, node := range nodes {
		if i := self.statement(node); i != nil {
			return i
		}
	}
	return nil
}

// Runs the statements inside a fresh frame which is always popped again.
func (self *Interpreter) block(nodes []*ast.Element) *value.Interrupt {
	self.enterScope()
	defer self.exitScope()

	return self.statements(nodes)
}

func (self *Interpreter) statement(node *ast.Element) *value.Interrupt {
	if i := self.checkCancelation(node.Span()); i != nil {
		return i
	}

	switch node.ElemType {
	case ast.VarDefNode:
		return self.declare(node.Name(), value.ValueNil{}, node.Span())
	case ast.AssignNode:
		return self.assignStatement(node)
	case ast.FCallNode:
		_, i := self.callFunc(node)
		return i
	case ast.IfNode:
		return self.ifStatement(node)
	case ast.ForNode:
		return self.forStatement(node)
	case ast.ReturnNode:
		return self.returnStatement(node)
	default:
		panic(fmt.Sprintf("A new statement kind (%s) was introduced without updating this code", node.ElemType))
	}
}

func (self *Interpreter) assignStatement(node *ast.Element) *value.Interrupt {
	val, i := self.expression(node.Child(ast.ExpressionKey))
	if i != nil {
		return i
	}
	return self.assign(node.Name(), *val, node.Span())
}

func (self *Interpreter) ifStatement(node *ast.Element) *value.Interrupt {
	condition, i := self.condition(node, "if statement")
	if i != nil {
		return i
	}

	if condition {
		return self.block(node.Children(ast.StatementsKey))
	}

	if node.Has(ast.ElseStatementsKey) {
		return self.block(node.Children(ast.ElseStatementsKey))
	}

	return nil
}

// The init statement runs in the enclosing frame, every iteration of the body gets a fresh one.
func (self *Interpreter) forStatement(node *ast.Element) *value.Interrupt {
	if i := self.statement(node.Child(ast.InitKey)); i != nil {
		return i
	}

	for {
		condition, i := self.condition(node, "for loop")
		if i != nil {
			return i
		}
		if !condition {
			return nil
		}

		if i := self.block(node.Children(ast.StatementsKey)); i != nil {
			return i
		}

		if i := self.statement(node.Child(ast.UpdateKey)); i != nil {
			return i
		}
	}
}

func (self *Interpreter) returnStatement(node *ast.Element) *value.Interrupt {
	expression := node.Child(ast.ExpressionKey)
	if expression == nil {
		return value.NewReturnInterrupt(value.ValueNil{})
	}

	val, i := self.expression(expression)
	if i != nil {
		return i
	}
	return value.NewReturnInterrupt(*val)
}

// Evaluates the condition of an `if` or `for`, which has to be a bool.
func (self *Interpreter) condition(node *ast.Element, context string) (bool, *value.Interrupt) {
	condNode := node.Child(ast.ConditionKey)

	condition, i := self.expression(condNode)
	if i != nil {
		return false, i
	}

	boolean, ok := (*condition).(value.ValueBool)
	if !ok {
		return false, value.NewRuntimeErr(
			fmt.Sprintf("Incompatible type for %s condition: expected bool, found %s", context, (*condition).Kind()),
			value.TypeErrorKind,
			condNode.Span(),
		)
	}

	return boolean.Inner, nil
}
