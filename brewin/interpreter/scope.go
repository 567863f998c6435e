package interpreter

import (
	"fmt"
	"sort"

	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
)

// A frame of the scope stack.
// Boundary frames hold no variables, they separate the frames of a call from those of its caller.
type scope struct {
	variables map[string]*value.Value
	boundary  bool
}

func (self *Interpreter) enterScope() {
	self.scopes = append(self.scopes, scope{variables: make(map[string]*value.Value)})
	self.logger.Trace().Int("depth", len(self.scopes)).Msg("Entered scope")
}

func (self *Interpreter) enterCallBoundary() {
	self.scopes = append(self.scopes, scope{boundary: true})
	self.enterScope()
}

func (self *Interpreter) exitScope() {
	if len(self.scopes) == 0 {
		panic("Cannot exit a scope: the scope stack is empty")
	}
	if self.scopes[len(self.scopes)-1].boundary {
		panic("Cannot exit a scope: the innermost frame is a call boundary")
	}

	self.scopes = self.scopes[:len(self.scopes)-1]
	self.logger.Trace().Int("depth", len(self.scopes)).Msg("Exited scope")
}

// Pops the call-local frame and the boundary below it.
func (self *Interpreter) exitCallBoundary() {
	self.exitScope()

	if len(self.scopes) == 0 || !self.scopes[len(self.scopes)-1].boundary {
		panic("Cannot exit a call: no call boundary below the innermost frame")
	}
	self.scopes = self.scopes[:len(self.scopes)-1]
}

func (self *Interpreter) declare(ident string, initial value.Value, span errors.Span) *value.Interrupt {
	current := self.scopes[len(self.scopes)-1]

	if _, exists := current.variables[ident]; exists {
		return value.NewRuntimeErr(
			fmt.Sprintf("Variable %s defined more than once", ident),
			value.NameErrorKind,
			span,
		)
	}

	current.variables[ident] = &initial
	self.logger.Trace().Str("variable", ident).Str("value", initial.Display()).Msg("Declared variable")
	return nil
}

func (self *Interpreter) assign(ident string, val value.Value, span errors.Span) *value.Interrupt {
	target := self.resolve(ident)
	if target == nil {
		return self.undefinedVariable(ident, span)
	}

	*target = val
	self.logger.Trace().Str("variable", ident).Str("value", val.Display()).Msg("Assigned variable")
	return nil
}

// Returns a copy of the variable's current value.
func (self *Interpreter) lookup(ident string, span errors.Span) (*value.Value, *value.Interrupt) {
	target := self.resolve(ident)
	if target == nil {
		return nil, self.undefinedVariable(ident, span)
	}

	val := *target
	return &val, nil
}

// Searches the frames from the innermost outwards, stopping at the nearest call boundary.
func (self *Interpreter) resolve(ident string) *value.Value {
	for i := len(self.scopes) - 1; i >= 0; i-- {
		if self.scopes[i].boundary {
			return nil
		}
		if val, found := self.scopes[i].variables[ident]; found {
			return val
		}
	}
	return nil
}

// All names that `resolve` can currently reach.
func (self *Interpreter) visibleNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	for i := len(self.scopes) - 1; i >= 0 && !self.scopes[i].boundary; i-- {
		for name := range self.scopes[i].variables {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}

func (self *Interpreter) undefinedVariable(ident string, span errors.Span) *value.Interrupt {
	notes := make([]string, 0)
	if suggestion, found := closestMatch(ident, self.visibleNames()); found {
		notes = append(notes, fmt.Sprintf("did you mean `%s`?", suggestion))
	}

	return value.NewRuntimeErr(
		fmt.Sprintf("Variable %s has not been defined", ident),
		value.NameErrorKind,
		span,
		notes...,
	)
}
