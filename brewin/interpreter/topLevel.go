package interpreter

import (
	"fmt"
	"sort"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
)

// Functions are overloaded by their number of parameters.
type functionKey struct {
	name  string
	arity int
}

func (self *Interpreter) registerFunctions() *value.Interrupt {
	for _, fn := range self.program.Children(ast.FunctionsKey) {
		key := functionKey{name: fn.Name(), arity: len(fn.Children(ast.ArgsKey))}

		if _, isBuiltin := builtins[key.name]; isBuiltin {
			return value.NewRuntimeErr(
				fmt.Sprintf("Function %s() conflicts with a built-in function", key.name),
				value.NameErrorKind,
				fn.Span(),
			)
		}

		if previous, exists := self.functions[key]; exists {
			return value.NewRuntimeErr(
				fmt.Sprintf("Function %s() taking %d parameter(s) is defined more than once", key.name, key.arity),
				value.NameErrorKind,
				fn.Span(),
				fmt.Sprintf("previous definition at %s", previous.Span()),
			)
		}

		self.functions[key] = fn
		self.logger.Trace().Str("function", key.name).Int("arity", key.arity).Msg("Registered function")
	}

	return nil
}

// Parameter counts of all user functions with the given name, in ascending order.
func (self *Interpreter) arities(name string) []int {
	arities := make([]int, 0)
	for key := range self.functions {
		if key.name == name {
			arities = append(arities, key.arity)
		}
	}
	sort.Ints(arities)
	return arities
}

// Names of every callable function, used for suggestions.
func (self *Interpreter) functionNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(self.functions)+len(builtins))

	for name := range builtins {
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for key := range self.functions {
		if _, ok := seen[key.name]; ok {
			continue
		}
		seen[key.name] = struct{}{}
		names = append(names, key.name)
	}

	sort.Strings(names)
	return names
}
