package interpreter

import (
	"context"
	"io"
	"testing"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
	"github.com/brewin-lang/brewin/brewin/lexer"
	"github.com/brewin-lang/brewin/brewin/parser"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	output []string
	input  []string
}

func (self *recordingExecutor) Output(line string) error {
	self.output = append(self.output, line)
	return nil
}

func (self *recordingExecutor) GetInput() (string, error) {
	if len(self.input) == 0 {
		return "", io.EOF
	}
	line := self.input[0]
	self.input = self.input[1:]
	return line, nil
}

func parse(t *testing.T, program string) *ast.Element {
	p := parser.NewParser(lexer.NewLexer(program, "test.br"), "test.br")
	tree, softErrors, err := p.Parse()
	require.Nil(t, err, spew.Sdump(err))
	require.Empty(t, softErrors, spew.Sdump(softErrors))
	return tree
}

func newTestInterpreter(program *ast.Element, executor value.Executor) Interpreter {
	return NewInterpreter(program, executor, 0, zerolog.Nop(), context.Background())
}

// Parses and executes the program, asserting that every frame was popped afterwards.
func run(t *testing.T, program string, input ...string) (*recordingExecutor, *value.Interrupt, Interpreter) {
	executor := &recordingExecutor{output: make([]string, 0), input: input}
	interpreter := newTestInterpreter(parse(t, program), executor)

	i := interpreter.Execute()
	require.Empty(t, interpreter.scopes, "frames left on the scope stack")
	require.Zero(t, interpreter.callDepth)

	return executor, i, interpreter
}

func requireRuntimeErr(t *testing.T, i *value.Interrupt, kind value.RuntimeErrorKind) value.RuntimeErr {
	require.NotNil(t, i)
	err, ok := (*i).(value.RuntimeErr)
	require.True(t, ok, spew.Sdump(*i))
	require.Equal(t, kind, err.ErrKind, err.MessageInternal)
	return err
}
