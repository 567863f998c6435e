package value

import "fmt"

type ValueKind uint8

const (
	NilValueKind ValueKind = iota
	IntValueKind
	BoolValueKind
	StringValueKind
)

func (self ValueKind) String() string {
	switch self {
	case NilValueKind:
		return "nil"
	case IntValueKind:
		return "int"
	case BoolValueKind:
		return "bool"
	case StringValueKind:
		return "string"
	default:
		panic("A new ValueKind was introduced without updating this code")
	}
}

type Value interface {
	Kind() ValueKind
	// The textual form used by `print`
	Display() string
	IsEqual(other Value) bool
}

//
// Nil
//

type ValueNil struct{}

func (_ ValueNil) Kind() ValueKind { return NilValueKind }
func (_ ValueNil) Display() string { return "nil" }
func (_ ValueNil) IsEqual(other Value) bool {
	return other.Kind() == NilValueKind
}

func NewValueNil() *Value {
	val := Value(ValueNil{})
	return &val
}

//
// Int
//

type ValueInt struct {
	Inner int64
}

func (_ ValueInt) Kind() ValueKind    { return IntValueKind }
func (self ValueInt) Display() string { return fmt.Sprint(self.Inner) }
func (self ValueInt) IsEqual(other Value) bool {
	if other.Kind() != IntValueKind {
		return false
	}
	return self.Inner == other.(ValueInt).Inner
}

func NewValueInt(inner int64) *Value {
	val := Value(ValueInt{Inner: inner})
	return &val
}

//
// Bool
//

type ValueBool struct {
	Inner bool
}

func (_ ValueBool) Kind() ValueKind { return BoolValueKind }

// Booleans are always rendered as the lowercase language tokens.
func (self ValueBool) Display() string {
	if self.Inner {
		return "true"
	}
	return "false"
}

func (self ValueBool) IsEqual(other Value) bool {
	if other.Kind() != BoolValueKind {
		return false
	}
	return self.Inner == other.(ValueBool).Inner
}

func NewValueBool(inner bool) *Value {
	val := Value(ValueBool{Inner: inner})
	return &val
}

//
// String
//

type ValueString struct {
	Inner string
}

func (_ ValueString) Kind() ValueKind    { return StringValueKind }
func (self ValueString) Display() string { return self.Inner }
func (self ValueString) IsEqual(other Value) bool {
	if other.Kind() != StringValueKind {
		return false
	}
	return self.Inner == other.(ValueString).Inner
}

func NewValueString(inner string) *Value {
	val := Value(ValueString{Inner: inner})
	return &val
}
