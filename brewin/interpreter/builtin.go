package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
)

type builtinFunction struct {
	minArgs int
	// -1 means any number of arguments
	maxArgs int
	fn      func(self *Interpreter, args []value.Value, span errors.Span) (*value.Value, *value.Interrupt)
}

func (self builtinFunction) accepts(count int) bool {
	return count >= self.minArgs && (self.maxArgs < 0 || count <= self.maxArgs)
}

func (self builtinFunction) arityDescription() string {
	switch {
	case self.maxArgs < 0:
		return fmt.Sprintf("at least %d argument(s)", self.minArgs)
	case self.minArgs == self.maxArgs:
		return fmt.Sprintf("exactly %d argument(s)", self.minArgs)
	default:
		return fmt.Sprintf("%d to %d argument(s)", self.minArgs, self.maxArgs)
	}
}

var builtins = map[string]builtinFunction{
	"print": {
		minArgs: 0,
		maxArgs: -1,
		fn:      builtinPrint,
	},
	"inputi": {
		minArgs: 0,
		maxArgs: 1,
		fn:      builtinInputi,
	},
}

// Writes the concatenation of all arguments as one line.
func builtinPrint(self *Interpreter, args []value.Value, span errors.Span) (*value.Value, *value.Interrupt) {
	var output strings.Builder
	for _, arg := range args {
		output.WriteString(arg.Display())
	}

	if err := self.executor.Output(output.String()); err != nil {
		return nil, value.NewTerminationInterrupt(fmt.Sprintf("Could not write output: %s", err.Error()), span)
	}

	return value.NewValueNil(), nil
}

// Reads one line of input and converts it into an integer.
// An optional argument is written as a prompt before reading.
func builtinInputi(self *Interpreter, args []value.Value, span errors.Span) (*value.Value, *value.Interrupt) {
	if len(args) == 1 {
		if err := self.prompt(args[0].Display()); err != nil {
			return nil, value.NewTerminationInterrupt(fmt.Sprintf("Could not write output: %s", err.Error()), span)
		}
	}

	input, err := self.executor.GetInput()
	if err != nil {
		return nil, value.NewTerminationInterrupt(fmt.Sprintf("Could not read input: %s", err.Error()), span)
	}

	parsed, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return nil, value.NewRuntimeErr(
			fmt.Sprintf("Cannot convert input %q into an integer", input),
			value.TypeErrorKind,
			span,
		)
	}

	return value.NewValueInt(parsed), nil
}

func (self *Interpreter) prompt(text string) error {
	if prompter, ok := self.executor.(value.Prompter); ok {
		return prompter.Prompt(text)
	}
	return self.executor.Output(text)
}
