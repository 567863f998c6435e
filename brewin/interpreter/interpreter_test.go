package interpreter

import (
	"context"
	"errors"
	"testing"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingMain(t *testing.T) {
	for _, program := range []string{
		`func helper() { print("x"); }`,
		`func mainly() { print("x"); }`,
	} {
		executor, i, _ := run(t, program)
		err := requireRuntimeErr(t, i, value.NameErrorKind)
		assert.Equal(t, "No main() function was found", err.MessageInternal)
		assert.Empty(t, executor.output)
	}
}

func TestMainWithParameters(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		expected []string
	}{
		{
			name:     "single parameter",
			program:  `func main(a) { print(1); }`,
			expected: []string{"1"},
		},
		{
			name:     "parameters are nil",
			program:  `func main(a, b) { print(a, " ", b == nil); }`,
			expected: []string{"nil true"},
		},
		{
			name: "fewest parameters wins",
			program: `
func main(a) { print("one"); }
func main() { print("zero"); }`,
			expected: []string{"zero"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			executor, i, _ := run(t, test.program)
			require.Nil(t, i, spew.Sdump(i))
			assert.Equal(t, test.expected, executor.output)
		})
	}
}

func TestDuplicateFunction(t *testing.T) {
	executor, i, _ := run(t, `
func main() { print("first"); }
func main() { print("second"); }`)

	err := requireRuntimeErr(t, i, value.NameErrorKind)
	assert.Equal(t, "Function main() taking 0 parameter(s) is defined more than once", err.MessageInternal)
	assert.Len(t, err.Notes, 1)
	assert.Empty(t, executor.output)
}

func TestBuiltinConflict(t *testing.T) {
	_, i, _ := run(t, `
func print(a, b, c) { return a; }
func main() { print(1, 2, 3); }`)

	err := requireRuntimeErr(t, i, value.NameErrorKind)
	assert.Equal(t, "Function print() conflicts with a built-in function", err.MessageInternal)
}

func TestLastReturnValue(t *testing.T) {
	_, i, interpreter := run(t, `
func helper() { return "helper"; }

func main() {
  helper();
  return 40 + 2;
}`)

	require.Nil(t, i, spew.Sdump(i))
	assert.Equal(t, value.ValueInt{Inner: 42}, interpreter.LastReturnValue())

	_, i, interpreter = run(t, `func main() { print("no return"); }`)
	require.Nil(t, i, spew.Sdump(i))
	assert.Equal(t, value.ValueNil{}, interpreter.LastReturnValue())
}

func TestCallDepthLimit(t *testing.T) {
	program := parse(t, `
func forever(n) { return forever(n + 1); }
func main() { forever(0); }`)

	executor := &recordingExecutor{}
	interpreter := NewInterpreter(program, executor, 50, zerolog.Nop(), context.Background())

	i := interpreter.Execute()
	require.NotNil(t, i)
	assert.Equal(t, value.TerminateInterruptKind, (*i).Kind())
	assert.Equal(t, "Maximum call depth of 50 was exceeded", (*i).Message())

	assert.Empty(t, interpreter.scopes)
	assert.Zero(t, interpreter.callDepth)
}

func TestCancelation(t *testing.T) {
	program := parse(t, `
func main() {
  var i;
  for (i = 0; true; i = i + 1) { print(i); }
}`)

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errors.New("stopped by host"))

	interpreter := NewInterpreter(program, &recordingExecutor{}, 0, zerolog.Nop(), ctx)

	i := interpreter.Execute()
	require.NotNil(t, i)
	assert.Equal(t, value.TerminateInterruptKind, (*i).Kind())
	assert.Equal(t, "stopped by host", (*i).Message())
	assert.Empty(t, interpreter.scopes)
}

type failingExecutor struct{}

func (self failingExecutor) Output(line string) error  { return errors.New("broken pipe") }
func (self failingExecutor) GetInput() (string, error) { return "", errors.New("closed") }

func TestExecutorFailures(t *testing.T) {
	for _, program := range []string{
		`func main() { print("x"); }`,
		`func main() { print(inputi()); }`,
	} {
		interpreter := newTestInterpreter(parse(t, program), failingExecutor{})

		i := interpreter.Execute()
		require.NotNil(t, i)
		assert.Equal(t, value.TerminateInterruptKind, (*i).Kind(), (*i).Message())
	}
}

func TestInputEOF(t *testing.T) {
	_, i, _ := run(t, `func main() { print(inputi()); }`)
	require.NotNil(t, i)
	assert.Equal(t, value.TerminateInterruptKind, (*i).Kind())
	assert.Equal(t, "Could not read input: EOF", (*i).Message())
}

func TestBuiltTree(t *testing.T) {
	program := ast.NewProgram(
		ast.NewFunc("double", []string{"x"},
			ast.NewReturn(ast.NewBinary(ast.MultiplyOp, ast.NewVar("x"), ast.NewInt(2))),
		),
		ast.NewFunc("main", nil,
			ast.NewVarDef("r"),
			ast.NewAssign("r", ast.NewCall("double", ast.NewInt(21))),
			ast.NewIf(
				ast.NewBinary(ast.EqualOp, ast.NewVar("r"), ast.NewInt(42)),
				[]*ast.Element{ast.NewCall("print", ast.NewString("ok"))},
				nil,
			),
		),
	)
	require.Nil(t, ast.Validate(program))

	executor := &recordingExecutor{}
	interpreter := newTestInterpreter(program, executor)

	i := interpreter.Execute()
	require.Nil(t, i, spew.Sdump(i))
	assert.Equal(t, []string{"ok"}, executor.output)
}

func TestTraceLogging(t *testing.T) {
	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(previous)

	var buf logBuffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	program := parse(t, `
func main() {
  var x;
  x = 1;
}`)

	interpreter := NewInterpreter(program, &recordingExecutor{}, 0, logger, context.Background())
	require.Nil(t, interpreter.Execute())

	assert.Contains(t, buf.String(), `"message":"Calling function"`)
	assert.Contains(t, buf.String(), `"variable":"x"`)
}

type logBuffer struct {
	data []byte
}

func (self *logBuffer) Write(p []byte) (int, error) {
	self.data = append(self.data, p...)
	return len(p), nil
}

func (self *logBuffer) String() string { return string(self.data) }

type promptingExecutor struct {
	recordingExecutor
	prompts []string
}

func (self *promptingExecutor) Prompt(text string) error {
	self.prompts = append(self.prompts, text)
	return nil
}

func TestInputiUsesPrompter(t *testing.T) {
	executor := &promptingExecutor{recordingExecutor: recordingExecutor{input: []string{"3"}}}
	interpreter := newTestInterpreter(parse(t, `func main() { print(inputi("? ") * 3); }`), executor)

	i := interpreter.Execute()
	require.Nil(t, i, spew.Sdump(i))
	assert.Equal(t, []string{"? "}, executor.prompts)
	assert.Equal(t, []string{"9"}, executor.output)
}
