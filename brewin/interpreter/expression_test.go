package interpreter

import (
	"math"
	"testing"

	"github.com/brewin-lang/brewin/brewin/ast"
	"github.com/brewin-lang/brewin/brewin/interpreter/value"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expressionTest struct {
	name       string
	expression *ast.Element
	expected   value.Value
	errKind    *value.RuntimeErrorKind
}

func errKind(kind value.RuntimeErrorKind) *value.RuntimeErrorKind {
	return &kind
}

func TestExpressions(t *testing.T) {
	i := ast.NewInt
	s := ast.NewString
	b := ast.NewBool
	bin := ast.NewBinary

	tests := []expressionTest{
		// literals
		{name: "int literal", expression: i(42), expected: value.ValueInt{Inner: 42}},
		{name: "string literal", expression: s("hi"), expected: value.ValueString{Inner: "hi"}},
		{name: "bool literal", expression: b(false), expected: value.ValueBool{Inner: false}},
		{name: "nil literal", expression: ast.NewNil(), expected: value.ValueNil{}},

		// arithmetic
		{name: "addition", expression: bin(ast.PlusOp, i(2), i(3)), expected: value.ValueInt{Inner: 5}},
		{name: "subtraction", expression: bin(ast.MinusOp, i(2), i(3)), expected: value.ValueInt{Inner: -1}},
		{name: "multiplication", expression: bin(ast.MultiplyOp, i(-4), i(3)), expected: value.ValueInt{Inner: -12}},
		{name: "division", expression: bin(ast.DivideOp, i(7), i(2)), expected: value.ValueInt{Inner: 3}},
		{name: "negative division floors", expression: bin(ast.DivideOp, i(-7), i(2)), expected: value.ValueInt{Inner: -4}},
		{name: "negative divisor floors", expression: bin(ast.DivideOp, i(7), i(-2)), expected: value.ValueInt{Inner: -4}},
		{name: "exact negative division", expression: bin(ast.DivideOp, i(-6), i(2)), expected: value.ValueInt{Inner: -3}},
		{name: "both negative", expression: bin(ast.DivideOp, i(-7), i(-2)), expected: value.ValueInt{Inner: 3}},
		{name: "addition wraps", expression: bin(ast.PlusOp, i(math.MaxInt64), i(1)), expected: value.ValueInt{Inner: math.MinInt64}},
		{name: "division by zero", expression: bin(ast.DivideOp, i(1), i(0)), errKind: errKind(value.TypeErrorKind)},
		{name: "string concatenation", expression: bin(ast.PlusOp, s("foo"), s("bar")), expected: value.ValueString{Inner: "foobar"}},
		{name: "string plus int", expression: bin(ast.PlusOp, s("a"), i(1)), errKind: errKind(value.TypeErrorKind)},
		{name: "int plus string", expression: bin(ast.PlusOp, i(1), s("a")), errKind: errKind(value.TypeErrorKind)},
		{name: "string subtraction", expression: bin(ast.MinusOp, s("a"), s("b")), errKind: errKind(value.TypeErrorKind)},
		{name: "bool arithmetic", expression: bin(ast.MultiplyOp, b(true), i(1)), errKind: errKind(value.TypeErrorKind)},
		{name: "nil arithmetic", expression: bin(ast.PlusOp, ast.NewNil(), ast.NewNil()), errKind: errKind(value.TypeErrorKind)},

		// prefix
		{name: "negation", expression: ast.NewNeg(i(5)), expected: value.ValueInt{Inner: -5}},
		{name: "double negation", expression: ast.NewNeg(ast.NewNeg(i(5))), expected: value.ValueInt{Inner: 5}},
		{name: "negate string", expression: ast.NewNeg(s("5")), errKind: errKind(value.TypeErrorKind)},
		{name: "not", expression: ast.NewNot(b(true)), expected: value.ValueBool{Inner: false}},
		{name: "not int", expression: ast.NewNot(i(0)), errKind: errKind(value.TypeErrorKind)},
		{name: "not nil", expression: ast.NewNot(ast.NewNil()), errKind: errKind(value.TypeErrorKind)},

		// comparison
		{name: "int equality", expression: bin(ast.EqualOp, i(3), i(3)), expected: value.ValueBool{Inner: true}},
		{name: "string inequality", expression: bin(ast.NotEqualOp, s("a"), s("b")), expected: value.ValueBool{Inner: true}},
		{name: "nil equality", expression: bin(ast.EqualOp, ast.NewNil(), ast.NewNil()), expected: value.ValueBool{Inner: true}},
		{name: "mixed kinds are unequal", expression: bin(ast.EqualOp, i(0), b(false)), expected: value.ValueBool{Inner: false}},
		{name: "mixed kinds differ", expression: bin(ast.NotEqualOp, s("1"), i(1)), expected: value.ValueBool{Inner: true}},
		{name: "nil against int", expression: bin(ast.EqualOp, ast.NewNil(), i(0)), expected: value.ValueBool{Inner: false}},
		{name: "less than", expression: bin(ast.LessOp, i(1), i(2)), expected: value.ValueBool{Inner: true}},
		{name: "less equal", expression: bin(ast.LessEqualOp, i(2), i(2)), expected: value.ValueBool{Inner: true}},
		{name: "greater than", expression: bin(ast.GreaterOp, i(1), i(2)), expected: value.ValueBool{Inner: false}},
		{name: "greater equal", expression: bin(ast.GreaterEqualOp, i(3), i(2)), expected: value.ValueBool{Inner: true}},
		{name: "string ordering", expression: bin(ast.LessOp, s("abc"), s("abd")), expected: value.ValueBool{Inner: true}},
		{name: "ordering mixed kinds", expression: bin(ast.LessOp, i(1), s("2")), errKind: errKind(value.TypeErrorKind)},
		{name: "ordering bools", expression: bin(ast.GreaterOp, b(true), b(false)), expected: value.ValueBool{Inner: true}},
		{name: "false before true", expression: bin(ast.LessOp, b(true), b(false)), expected: value.ValueBool{Inner: false}},
		{name: "bool less equal", expression: bin(ast.LessEqualOp, b(false), b(false)), expected: value.ValueBool{Inner: true}},
		{name: "ordering bool and int", expression: bin(ast.GreaterEqualOp, b(true), i(1)), errKind: errKind(value.TypeErrorKind)},
		{name: "ordering nil", expression: bin(ast.LessEqualOp, ast.NewNil(), ast.NewNil()), errKind: errKind(value.TypeErrorKind)},

		// logical
		{name: "and", expression: bin(ast.AndOp, b(true), b(false)), expected: value.ValueBool{Inner: false}},
		{name: "or", expression: bin(ast.OrOp, b(false), b(true)), expected: value.ValueBool{Inner: true}},
		{name: "and with int", expression: bin(ast.AndOp, b(true), i(1)), errKind: errKind(value.TypeErrorKind)},
		{name: "or with nil", expression: bin(ast.OrOp, ast.NewNil(), b(true)), errKind: errKind(value.TypeErrorKind)},

		// nesting
		{
			name:       "nested",
			expression: bin(ast.EqualOp, bin(ast.MultiplyOp, bin(ast.PlusOp, i(1), i(2)), i(3)), i(9)),
			expected:   value.ValueBool{Inner: true},
		},

		// names
		{name: "undefined variable", expression: ast.NewVar("x"), errKind: errKind(value.NameErrorKind)},
		{name: "undefined function", expression: ast.NewCall("nope"), errKind: errKind(value.NameErrorKind)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			interpreter := newTestInterpreter(ast.NewProgram(), &recordingExecutor{})
			interpreter.enterCallBoundary()

			result, interrupt := interpreter.expression(test.expression)

			if test.errKind != nil {
				require.Nil(t, result)
				requireRuntimeErr(t, interrupt, *test.errKind)
				return
			}

			require.Nil(t, interrupt, spew.Sdump(interrupt))
			assert.Equal(t, test.expected, *result)
		})
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(math.MinInt64), floorDiv(math.MinInt64, -1))
	assert.Equal(t, int64(-1), floorDiv(-1, 3))
	assert.Equal(t, int64(0), floorDiv(1, 3))
	assert.Equal(t, int64(-1), floorDiv(1, -3))
}

func TestOperandsEvaluatedOnceLeftToRight(t *testing.T) {
	executor, i, _ := run(t, `
func f(x) {
  print(x);
  return x;
}

func main() {
  print(f(1) + f(2));
  print(f(3) < f(4));
}`)

	require.Nil(t, i, spew.Sdump(i))
	assert.Equal(t, []string{"1", "2", "3", "3", "4", "true"}, executor.output)
}

func TestLogicalOperatorsDoNotShortCircuit(t *testing.T) {
	executor, i, _ := run(t, `
func side(b) {
  print("evaluated");
  return b;
}

func main() {
  print(false && side(true));
  print(true || side(false));
}`)

	require.Nil(t, i, spew.Sdump(i))
	assert.Equal(t, []string{"evaluated", "false", "evaluated", "true"}, executor.output)
}

func TestRightOperandErrorAfterLeftSideEffects(t *testing.T) {
	executor, i, _ := run(t, `
func f() {
  print("left");
  return 1;
}

func main() {
  print(f() + "x");
}`)

	requireRuntimeErr(t, i, value.TypeErrorKind)
	assert.Equal(t, []string{"left"}, executor.output)
}
