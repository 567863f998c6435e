package interpreter

import (
	"context"
	"fmt"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
	"github.com/rs/zerolog"
)

const entryFunction = "main"

// One execution session of a program.
// All mutable state of the evaluator lives here, nothing is shared between sessions.
type Interpreter struct {
	program   *ast.Element
	executor  value.Executor
	functions map[functionKey]*ast.Element
	scopes    []scope
	// The value captured by the most recently completed user function call
	returnValue  value.Value
	callDepth    uint
	maxCallDepth uint
	cancelCtx    context.Context
	logger       zerolog.Logger
}

// A `maxCallDepth` of 0 disables the call depth limit.
func NewInterpreter(
	program *ast.Element,
	executor value.Executor,
	maxCallDepth uint,
	logger zerolog.Logger,
	cancelCtx context.Context,
) Interpreter {
	return Interpreter{
		program:      program,
		executor:     executor,
		functions:    make(map[functionKey]*ast.Element),
		scopes:       make([]scope, 0),
		returnValue:  value.ValueNil{},
		callDepth:    0,
		maxCallDepth: maxCallDepth,
		cancelCtx:    cancelCtx,
		logger:       logger,
	}
}

// Registers all functions of the program and invokes `main`.
// The returned interrupt is either nil or fatal, return interrupts are consumed by the call of `main`.
func (self *Interpreter) Execute() *value.Interrupt {
	if i := self.registerFunctions(); i != nil {
		return i
	}

	// `main` may declare parameters, the overload taking the fewest is chosen
	arities := self.arities(entryFunction)
	if len(arities) == 0 {
		return value.NewRuntimeErr(
			fmt.Sprintf("No %s() function was found", entryFunction),
			value.NameErrorKind,
			self.program.Span(),
		)
	}
	main := self.functions[functionKey{name: entryFunction, arity: arities[0]}]

	self.logger.Debug().Int("functions", len(self.functions)).Msg("Executing program")

	// parameters of `main` start out as nil
	args := make([]value.Value, arities[0])
	for idx := range args {
		args[idx] = value.ValueNil{}
	}

	_, i := self.invoke(main, args, main.Span())
	return i
}

// The value captured by the most recently completed user function call.
func (self *Interpreter) LastReturnValue() value.Value {
	return self.returnValue
}

func (self *Interpreter) checkCancelation(span errors.Span) *value.Interrupt {
	select {
	case <-self.cancelCtx.Done():
		return value.NewTerminationInterrupt(context.Cause(self.cancelCtx).Error(), span)
	default:
		// do nothing, this should not block the entire interpreter
		return nil
	}
}
