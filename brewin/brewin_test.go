package brewin

import (
	"context"
	"testing"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	executor := NewTestingExecutor("6")

	ret, err := Run(context.Background(), executor, "test.br", `
func square(x) { return x * x; }

func main() {
  var n;
  n = inputi("n: ");
  print(n, " squared is ", square(n));
  return square(n) - 1;
}`, Options{})

	require.Nil(t, err, spew.Sdump(err))
	assert.Equal(t, value.ValueInt{Inner: 35}, ret)
	assert.Equal(t, []string{"n: ", "6 squared is 36"}, executor.OutputLines)
	assert.Equal(t, "n: \n6 squared is 36\n", executor.Transcript())
	assert.Empty(t, executor.Errors)
}

func TestErrorSink(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		kind     errors.ErrorKind
		reported bool
	}{
		{
			name:     "name error",
			program:  `func main() { print(x); }`,
			kind:     errors.NameError,
			reported: true,
		},
		{
			name:     "type error",
			program:  `func main() { print(1 + true); }`,
			kind:     errors.TypeError,
			reported: true,
		},
		{
			name:     "missing main",
			program:  `func other() { }`,
			kind:     errors.NameError,
			reported: true,
		},
		{
			name:     "syntax error",
			program:  `func main() { print(1 + ); }`,
			kind:     errors.SyntaxError,
			reported: false,
		},
		{
			name:     "input exhausted",
			program:  `func main() { inputi(); }`,
			kind:     errors.TerminationError,
			reported: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			executor := NewTestingExecutor()

			ret, err := Run(context.Background(), executor, "test.br", test.program, Options{})
			require.NotNil(t, err)
			assert.Nil(t, ret)
			assert.Equal(t, test.kind, err.Kind, err.Error())

			if test.reported {
				require.Len(t, executor.Errors, 1)
				assert.Equal(t, *err, executor.Errors[0])
			} else {
				assert.Empty(t, executor.Errors)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tree, errs := Parse("ok.br", `func main() { return 1; }`)
	require.Empty(t, errs)
	require.NotNil(t, tree)
	assert.Equal(t, "main", tree.Children(ast.FunctionsKey)[0].Name())

	// a missing semicolon can be recovered from
	tree, errs = Parse("soft.br", `func main() { var x }`)
	assert.NotNil(t, tree)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.SyntaxError, errs[0].Kind)

	tree, errs = Parse("bad.br", `func main() { print(1 + ); }`)
	assert.Nil(t, tree)
	require.NotEmpty(t, errs)
	for _, err := range errs {
		assert.Equal(t, errors.SyntaxError, err.Kind)
		assert.Equal(t, "bad.br", err.Span.Filename)
	}
}

func TestRunAST(t *testing.T) {
	doc := `
elem_type: program
functions:
  - elem_type: func
    name: main
    args: []
    statements:
      - elem_type: vardef
        name: x
      - elem_type: "="
        name: x
        expression:
          elem_type: "+"
          op1: {elem_type: int, val: 40}
          op2: {elem_type: int, val: 2}
      - elem_type: fcall
        name: print
        args:
          - {elem_type: string, val: "x = "}
          - {elem_type: var, name: x}
      - elem_type: return
        expression: {elem_type: var, name: x}
`
	program, err := ast.LoadYAML([]byte(doc), "program.yaml")
	require.NoError(t, err)

	executor := NewTestingExecutor()
	ret, runErr := RunAST(context.Background(), executor, program, Options{})
	require.Nil(t, runErr, spew.Sdump(runErr))
	assert.Equal(t, value.ValueInt{Inner: 42}, ret)
	assert.Equal(t, []string{"x = 42"}, executor.OutputLines)
}

func TestRunASTRejectsMalformedTree(t *testing.T) {
	program := ast.NewProgram(
		ast.NewFunc("main", nil,
			ast.NewElement("while", errors.Span{}),
		),
	)

	executor := NewTestingExecutor()
	_, err := RunAST(context.Background(), executor, program, Options{})
	require.NotNil(t, err)
	assert.Equal(t, errors.SyntaxError, err.Kind)
	assert.Empty(t, executor.Errors)
}

func TestRunCallDepth(t *testing.T) {
	executor := NewTestingExecutor()

	_, err := Run(context.Background(), executor, "deep.br", `
func down(n) {
  if (n == 0) { return 0; }
  return down(n - 1);
}

func main() {
  print(down(10));
  print(down(1000));
}`, Options{MaxCallDepth: 100})

	require.NotNil(t, err)
	assert.Equal(t, errors.TerminationError, err.Kind)
	assert.Equal(t, []string{"0"}, executor.OutputLines)
	assert.Empty(t, executor.Errors)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := NewTestingExecutor()
	_, err := Run(ctx, executor, "loop.br", `
func main() {
  var i;
  for (i = 0; true; i = i + 1) { }
}`, Options{})

	require.NotNil(t, err)
	assert.Equal(t, errors.TerminationError, err.Kind)
	assert.Equal(t, context.Canceled.Error(), err.Message)
}
