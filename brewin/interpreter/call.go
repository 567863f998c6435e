package interpreter

import (
	"fmt"
	"strings"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
)

// Dispatches a call to either a built-in or a user function.
// Built-ins are resolved by name alone, user functions by name and argument count.
func (self *Interpreter) callFunc(node *ast.Element) (*value.Value, *value.Interrupt) {
	name := node.Name()
	argNodes := node.Children(ast.ArgsKey)
	span := node.Span()

	if builtin, isBuiltin := builtins[name]; isBuiltin {
		if !builtin.accepts(len(argNodes)) {
			return nil, value.NewRuntimeErr(
				fmt.Sprintf("No %s() function found that takes %d parameter(s)", name, len(argNodes)),
				value.NameErrorKind,
				span,
				fmt.Sprintf("%s() takes %s", name, builtin.arityDescription()),
			)
		}

		args, i := self.arguments(argNodes)
		if i != nil {
			return nil, i
		}
		return builtin.fn(self, args, span)
	}

	fn, found := self.functions[functionKey{name: name, arity: len(argNodes)}]
	if !found {
		return nil, self.undefinedFunction(name, len(argNodes), span)
	}

	args, i := self.arguments(argNodes)
	if i != nil {
		return nil, i
	}
	return self.invoke(fn, args, span)
}

// Arguments are evaluated from left to right in the caller's environment.
func (self *Interpreter) arguments(nodes []*ast.Element) ([]value.Value, *value.Interrupt) {
	args := make([]value.Value, 0, len(nodes))
	for _, node := range nodes {
		arg, i := self.expression(node)
		if i != nil {
			return nil, i
		}
		args = append(args, *arg)
	}
	return args, nil
}

// Runs the body of a user function behind a fresh call boundary.
// A function without a `return` or with an empty `return` yields nil.
func (self *Interpreter) invoke(fn *ast.Element, args []value.Value, span errors.Span) (*value.Value, *value.Interrupt) {
	if self.maxCallDepth > 0 && self.callDepth >= self.maxCallDepth {
		return nil, value.NewTerminationInterrupt(
			fmt.Sprintf("Maximum call depth of %d was exceeded", self.maxCallDepth),
			span,
		)
	}

	self.callDepth++
	self.enterCallBoundary()
	defer func() {
		self.exitCallBoundary()
		self.callDepth--
	}()

	self.logger.Trace().
		Str("function", fn.Name()).
		Int("arity", len(args)).
		Uint("depth", self.callDepth).
		Msg("Calling function")

	params := fn.Children(ast.ArgsKey)
	for idx, param := range params {
		if i := self.declare(param.Name(), args[idx], param.Span()); i != nil {
			return nil, i
		}
	}

	result := value.Value(value.ValueNil{})

	if i := self.statements(fn.Children(ast.StatementsKey)); i != nil {
		if (*i).Kind() != value.ReturnInterruptKind {
			return nil, i
		}
		result = (*i).(value.ReturnInterrupt).ReturnValue
	}

	self.returnValue = result
	return &result, nil
}

func (self *Interpreter) undefinedFunction(name string, arity int, span errors.Span) *value.Interrupt {
	if arities := self.arities(name); len(arities) > 0 {
		available := make([]string, 0, len(arities))
		for _, a := range arities {
			available = append(available, fmt.Sprint(a))
		}

		return value.NewRuntimeErr(
			fmt.Sprintf("No %s() function found that takes %d parameter(s)", name, arity),
			value.NameErrorKind,
			span,
			fmt.Sprintf("%s() is defined with %s parameter(s)", name, strings.Join(available, ", ")),
		)
	}

	notes := make([]string, 0)
	if suggestion, found := closestMatch(name, self.functionNames()); found {
		notes = append(notes, fmt.Sprintf("did you mean `%s()`?", suggestion))
	}

	return value.NewRuntimeErr(
		fmt.Sprintf("Function %s has not been defined", name),
		value.NameErrorKind,
		span,
		notes...,
	)
}
