package brewin

import (
	"context"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/interpreter"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
	"github.com/brewin-lang/brewin/brewin/lexer"
	"github.com/brewin-lang/brewin/brewin/parser"
	"github.com/rs/zerolog"
)

// The host side of a program execution.
type Executor interface {
	value.Executor
	// Invoked exactly once when the program raises a name or type error.
	// Syntax and termination errors are only returned to the caller.
	Error(err errors.Error)
}

type Options struct {
	// Limits the nesting of user function calls, 0 means unlimited
	MaxCallDepth uint
	// The zero value discards all log output
	Logger zerolog.Logger
}

// Parses the source code of a program.
// Recoverable syntax errors are returned alongside the tree, a fatal one replaces it.
func Parse(filename string, program string) (*ast.Element, []errors.Error) {
	p := parser.NewParser(lexer.NewLexer(program, filename), filename)

	tree, softErrors, hardError := p.Parse()
	if hardError != nil {
		return nil, append(softErrors, *hardError)
	}

	return tree, softErrors
}

// Parses and executes the given Brewin code.
// The `ctx` is checked before every statement and expression, cancelling it terminates the program.
func Run(
	ctx context.Context,
	executor Executor,
	filename string,
	program string,
	options Options,
) (value.Value, *errors.Error) {
	tree, syntaxErrors := Parse(filename, program)
	if len(syntaxErrors) > 0 {
		return nil, &syntaxErrors[0]
	}

	return RunAST(ctx, executor, tree, options)
}

// Executes a syntax tree which did not necessarily originate from the parser.
// On success, the value returned by `main` is returned.
func RunAST(
	ctx context.Context,
	executor Executor,
	program *ast.Element,
	options Options,
) (value.Value, *errors.Error) {
	if err := ast.Validate(program); err != nil {
		return nil, err
	}

	session := interpreter.NewInterpreter(
		program,
		executor,
		options.MaxCallDepth,
		options.Logger,
		ctx,
	)

	if i := session.Execute(); i != nil {
		err := value.IntoError(*i)
		if err.Kind.IsLanguageError() {
			executor.Error(*err)
		}
		return nil, err
	}

	return session.LastReturnValue(), nil
}
