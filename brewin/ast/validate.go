package ast

import (
	"fmt"

	"github.com/brewin-lang/brewin/brewin/errors"
)

// Checks that an externally produced tree satisfies the shape the interpreter relies on.
// The parser only produces valid trees, this is meant for trees loaded from YAML or built by hosts.
func Validate(program *Element) *errors.Error {
	if program == nil {
		return errors.NewSyntaxError(errors.Span{}, "Syntax tree is empty")
	}
	if program.ElemType != ProgramNode {
		return errors.NewSyntaxError(program.Range, fmt.Sprintf("Expected root element '%s', found '%s'", ProgramNode, program.ElemType))
	}

	functions, err := elementList(program, FunctionsKey)
	if err != nil {
		return err
	}

	for _, fn := range functions {
		if err := validateFunction(fn); err != nil {
			return err
		}
	}

	return nil
}

func validateFunction(fn *Element) *errors.Error {
	if fn.ElemType != FuncNode {
		return errors.NewSyntaxError(fn.Range, fmt.Sprintf("Expected function definition, found '%s'", fn.ElemType))
	}
	if err := requireName(fn); err != nil {
		return err
	}

	params, err := elementList(fn, ArgsKey)
	if err != nil {
		return err
	}
	for _, param := range params {
		if param.ElemType != ArgNode {
			return errors.NewSyntaxError(param.Range, fmt.Sprintf("Expected parameter, found '%s'", param.ElemType))
		}
		if err := requireName(param); err != nil {
			return err
		}
	}

	return validateStatements(fn, StatementsKey)
}

func validateStatements(parent *Element, key string) *errors.Error {
	statements, err := elementList(parent, key)
	if err != nil {
		return err
	}
	for _, statement := range statements {
		if err := validateStatement(statement); err != nil {
			return err
		}
	}
	return nil
}

func validateStatement(node *Element) *errors.Error {
	switch node.ElemType {
	case VarDefNode:
		return requireName(node)
	case AssignNode:
		if err := requireName(node); err != nil {
			return err
		}
		return validateChildExpression(node, ExpressionKey)
	case FCallNode:
		return validateCall(node)
	case IfNode:
		if err := validateChildExpression(node, ConditionKey); err != nil {
			return err
		}
		if err := validateStatements(node, StatementsKey); err != nil {
			return err
		}
		if node.Get(ElseStatementsKey) == nil {
			return nil
		}
		return validateStatements(node, ElseStatementsKey)
	case ForNode:
		for _, key := range []string{InitKey, UpdateKey} {
			child, err := requireElement(node, key)
			if err != nil {
				return err
			}
			if err := validateStatement(child); err != nil {
				return err
			}
		}
		if err := validateChildExpression(node, ConditionKey); err != nil {
			return err
		}
		return validateStatements(node, StatementsKey)
	case ReturnNode:
		if node.Get(ExpressionKey) == nil {
			return nil
		}
		return validateChildExpression(node, ExpressionKey)
	default:
		return errors.NewSyntaxError(node.Range, fmt.Sprintf("Unknown statement type '%s'", node.ElemType))
	}
}

func validateCall(node *Element) *errors.Error {
	if err := requireName(node); err != nil {
		return err
	}
	args, err := elementList(node, ArgsKey)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err := validateExpression(arg); err != nil {
			return err
		}
	}
	return nil
}

func validateChildExpression(node *Element, key string) *errors.Error {
	child, err := requireElement(node, key)
	if err != nil {
		return err
	}
	return validateExpression(child)
}

func validateExpression(node *Element) *errors.Error {
	switch node.ElemType {
	case VarNode:
		return requireName(node)
	case IntNode:
		if _, ok := node.Get(ValKey).(int64); !ok {
			return errors.NewSyntaxError(node.Range, "Integer literal requires an integer `val`")
		}
	case StringNode:
		if _, ok := node.Get(ValKey).(string); !ok {
			return errors.NewSyntaxError(node.Range, "String literal requires a string `val`")
		}
	case BoolNode:
		if _, ok := node.Get(ValKey).(bool); !ok {
			return errors.NewSyntaxError(node.Range, "Boolean literal requires a boolean `val`")
		}
	case NilNode:
	case FCallNode:
		return validateCall(node)
	case NegNode, NotNode:
		return validateChildExpression(node, Op1Key)
	default:
		if !IsBinaryOperator(node.ElemType) {
			return errors.NewSyntaxError(node.Range, fmt.Sprintf("Unknown expression type '%s'", node.ElemType))
		}
		if err := validateChildExpression(node, Op1Key); err != nil {
			return err
		}
		return validateChildExpression(node, Op2Key)
	}

	return nil
}

func requireName(node *Element) *errors.Error {
	if node.Name() == "" {
		return errors.NewSyntaxError(node.Range, fmt.Sprintf("Element '%s' requires a non-empty `%s`", node.ElemType, NameKey))
	}
	return nil
}

func requireElement(node *Element, key string) (*Element, *errors.Error) {
	child := node.Child(key)
	if child == nil {
		return nil, errors.NewSyntaxError(node.Range, fmt.Sprintf("Element '%s' requires a child `%s`", node.ElemType, key))
	}
	return child, nil
}

// A missing list is treated as empty; any other non-list value is an error.
func elementList(node *Element, key string) ([]*Element, *errors.Error) {
	raw := node.Get(key)
	if raw == nil {
		return make([]*Element, 0), nil
	}
	list, ok := raw.([]*Element)
	if !ok {
		return nil, errors.NewSyntaxError(node.Range, fmt.Sprintf("Element '%s' requires `%s` to be a list of elements", node.ElemType, key))
	}
	for _, item := range list {
		if item == nil {
			return nil, errors.NewSyntaxError(node.Range, fmt.Sprintf("Element '%s' contains an empty entry in `%s`", node.ElemType, key))
		}
	}
	return list, nil
}
