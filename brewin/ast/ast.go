package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brewin-lang/brewin/brewin/errors"
)

//
// Element types
//

const (
	ProgramNode = "program"
	FuncNode    = "func"
	ArgNode     = "arg"

	VarDefNode = "vardef"
	AssignNode = "="
	FCallNode  = "fcall"
	IfNode     = "if"
	ForNode    = "for"
	ReturnNode = "return"

	VarNode    = "var"
	IntNode    = "int"
	StringNode = "string"
	BoolNode   = "bool"
	NilNode    = "nil"

	NegNode = "neg"
	NotNode = "!"
)

// Binary operators
const (
	PlusOp         = "+"
	MinusOp        = "-"
	MultiplyOp     = "*"
	DivideOp       = "/"
	EqualOp        = "=="
	NotEqualOp     = "!="
	LessOp         = "<"
	LessEqualOp    = "<="
	GreaterOp      = ">"
	GreaterEqualOp = ">="
	AndOp          = "&&"
	OrOp           = "||"
)

// Child keys
const (
	FunctionsKey      = "functions"
	NameKey           = "name"
	ArgsKey           = "args"
	StatementsKey     = "statements"
	ElseStatementsKey = "else_statements"
	ConditionKey      = "condition"
	InitKey           = "init"
	UpdateKey         = "update"
	ExpressionKey     = "expression"
	ValKey            = "val"
	Op1Key            = "op1"
	Op2Key            = "op2"
)

func IsArithmeticOperator(elemType string) bool {
	switch elemType {
	case PlusOp, MinusOp, MultiplyOp, DivideOp:
		return true
	default:
		return false
	}
}

func IsComparisonOperator(elemType string) bool {
	switch elemType {
	case EqualOp, NotEqualOp, LessOp, LessEqualOp, GreaterOp, GreaterEqualOp:
		return true
	default:
		return false
	}
}

func IsLogicalOperator(elemType string) bool {
	return elemType == AndOp || elemType == OrOp
}

func IsBinaryOperator(elemType string) bool {
	return IsArithmeticOperator(elemType) || IsComparisonOperator(elemType) || IsLogicalOperator(elemType)
}

//
// Element
//

// A node of the abstract syntax tree.
// Children are addressed by name, the element type discriminates the node.
// Values of `Dict` are one of: `string`, `int64`, `bool`, `nil`, `*Element` or `[]*Element`.
type Element struct {
	ElemType string
	Dict     map[string]any
	Range    errors.Span
}

func NewElement(elemType string, span errors.Span) *Element {
	return &Element{
		ElemType: elemType,
		Dict:     make(map[string]any),
		Range:    span,
	}
}

func (self *Element) Span() errors.Span { return self.Range }

// Returns the raw child value stored under `key` or nil if it is absent.
func (self *Element) Get(key string) any {
	if self == nil || self.Dict == nil {
		return nil
	}
	return self.Dict[key]
}

func (self *Element) Set(key string, val any) *Element {
	if self.Dict == nil {
		self.Dict = make(map[string]any)
	}
	self.Dict[key] = val
	return self
}

func (self *Element) Has(key string) bool {
	if self == nil || self.Dict == nil {
		return false
	}
	_, found := self.Dict[key]
	return found
}

func (self *Element) Name() string {
	name, _ := self.Get(NameKey).(string)
	return name
}

func (self *Element) Child(key string) *Element {
	child, _ := self.Get(key).(*Element)
	return child
}

// Returns the element list stored under `key`.
// A missing key and an explicit nil both yield an empty list.
func (self *Element) Children(key string) []*Element {
	children, _ := self.Get(key).([]*Element)
	if children == nil {
		return make([]*Element, 0)
	}
	return children
}

// Parameter names of a function definition.
func (self *Element) ParamNames() []string {
	params := self.Children(ArgsKey)
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, param.Name())
	}
	return names
}

func (self *Element) String() string {
	if self == nil {
		return "<nil>"
	}

	switch self.ElemType {
	case IntNode, BoolNode:
		return fmt.Sprintf("%s(%v)", self.ElemType, self.Get(ValKey))
	case StringNode:
		return fmt.Sprintf("%s(%q)", self.ElemType, self.Get(ValKey))
	case NilNode:
		return NilNode
	case VarNode, ArgNode, VarDefNode:
		return fmt.Sprintf("%s(%s)", self.ElemType, self.Name())
	}

	keys := make([]string, 0, len(self.Dict))
	for key := range self.Dict {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	contents := make([]string, 0)
	for _, key := range keys {
		contents = append(contents, fmt.Sprintf("%s: %s", key, displayChild(self.Dict[key])))
	}

	if len(contents) == 0 {
		return self.ElemType
	}

	return fmt.Sprintf(
		"%s {\n    %s\n}",
		self.ElemType,
		strings.ReplaceAll(strings.Join(contents, "\n"), "\n", "\n    "),
	)
}

func displayChild(child any) string {
	switch child := child.(type) {
	case nil:
		return "<none>"
	case *Element:
		return child.String()
	case []*Element:
		if len(child) == 0 {
			return "[]"
		}
		items := make([]string, 0, len(child))
		for _, item := range child {
			items = append(items, item.String())
		}
		return fmt.Sprintf("[\n    %s\n]", strings.ReplaceAll(strings.Join(items, "\n"), "\n", "\n    "))
	case string:
		return child
	default:
		return fmt.Sprint(child)
	}
}
