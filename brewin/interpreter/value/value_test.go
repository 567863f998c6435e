package value

import (
	"testing"

	"github.com/brewin-lang/brewin/brewin/errors"
	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	assert.Equal(t, "nil", (*NewValueNil()).Display())
	assert.Equal(t, "-42", (*NewValueInt(-42)).Display())
	assert.Equal(t, "true", (*NewValueBool(true)).Display())
	assert.Equal(t, "false", (*NewValueBool(false)).Display())
	assert.Equal(t, "a b", (*NewValueString("a b")).Display())
}

func TestIsEqual(t *testing.T) {
	values := []Value{
		*NewValueNil(),
		*NewValueInt(0),
		*NewValueBool(false),
		*NewValueString(""),
	}

	// values of different kinds are never equal, even if they look alike
	for i, lhs := range values {
		for j, rhs := range values {
			assert.Equal(t, i == j, lhs.IsEqual(rhs), "%s == %s", lhs.Kind(), rhs.Kind())
		}
	}

	assert.True(t, (*NewValueInt(7)).IsEqual(*NewValueInt(7)))
	assert.False(t, (*NewValueInt(7)).IsEqual(*NewValueInt(8)))
	assert.False(t, (*NewValueString("0")).IsEqual(*NewValueInt(0)))
	assert.False(t, (*NewValueString("true")).IsEqual(*NewValueString("true ")))
}

func TestIntoError(t *testing.T) {
	span := errors.Span{Filename: "x.br", Start: errors.Location{Line: 3, Column: 1}}

	err := IntoError(*NewRuntimeErr("Variable y has not been defined", NameErrorKind, span, "did you mean `x`?"))
	assert.Equal(t, errors.NameError, err.Kind)
	assert.Equal(t, []string{"did you mean `x`?"}, err.Notes)
	assert.Equal(t, span, err.Span)

	err = IntoError(*NewRuntimeErr("bad operand", TypeErrorKind, span))
	assert.Equal(t, errors.TypeError, err.Kind)
	assert.Empty(t, err.Notes)

	err = IntoError(*NewTerminationInterrupt("context canceled", span))
	assert.Equal(t, errors.TerminationError, err.Kind)
	assert.Equal(t, "context canceled", err.Message)

	assert.Panics(t, func() { IntoError(*NewReturnInterrupt(*NewValueNil())) })
}
