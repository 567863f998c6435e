package lexer

import (
	"fmt"

	"github.com/brewin-lang/brewin/brewin/errors"
)

type Token struct {
	Kind  TokenKind
	Value string
	Span  errors.Span
}

func newToken(kind TokenKind, value string, span errors.Span) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Span:  span,
	}
}

func UnknownToken(location errors.Location) Token {
	return Token{
		Kind:  Unknown,
		Value: "Unknown",
		Span: errors.Span{
			Start: location,
			End:   location,
		},
	}
}

type TokenKind uint8

const (
	Unknown TokenKind = iota
	EOF

	Semicolon // ;
	Comma     // ,

	LParen // (
	RParen // )
	LCurly // {
	RCurly // }

	Or               // ||
	And              // &&
	Equal            // ==
	NotEqual         // !=
	LessThan         // <
	LessThanEqual    // <=
	GreaterThan      // >
	GreaterThanEqual // >=
	Not              // !

	Plus     // +
	Minus    // -
	Multiply // *
	Divide   // /

	Assign // =

	Func   // func
	Var    // var
	If     // if
	Else   // else
	For    // for
	Return // return
	True   // true
	False  // false
	Nil    // nil

	String
	Int
	Identifier
)

func (self TokenKind) String() string {
	switch self {
	case Unknown:
		return "Unknown"
	case EOF:
		return "EOF"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case LParen:
		return "("
	case RParen:
		return ")"
	case LCurly:
		return "{"
	case RCurly:
		return "}"
	case Or:
		return "||"
	case And:
		return "&&"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanEqual:
		return ">="
	case Not:
		return "!"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Assign:
		return "="
	case Func:
		return "func"
	case Var:
		return "var"
	case If:
		return "if"
	case Else:
		return "else"
	case For:
		return "for"
	case Return:
		return "return"
	case True:
		return "true"
	case False:
		return "false"
	case Nil:
		return "nil"
	case String:
		return "string"
	case Int:
		return "integer"
	case Identifier:
		return "identifier"
	default:
		panic(fmt.Sprintf("A new token kind (%d) was introduced without updating this code", self))
	}
}

var keywords = map[string]TokenKind{
	"func":   Func,
	"var":    Var,
	"if":     If,
	"else":   Else,
	"for":    For,
	"return": Return,
	"true":   True,
	"false":  False,
	"nil":    Nil,
}

// Left and right binding power of infix operators.
// A left precedence of 0 means that the token does not continue an expression.
func (self TokenKind) Prec() (left uint8, right uint8) {
	switch self {
	case Or:
		return 1, 2
	case And:
		return 3, 4
	case Equal, NotEqual, LessThan, GreaterThan, LessThanEqual, GreaterThanEqual:
		return 5, 6
	case Plus, Minus:
		return 7, 8
	case Multiply, Divide:
		return 9, 10
	default:
		return 0, 0
	}
}

// Binding power used for the operand of a prefix operator.
// It is higher than all infix precedences.
const PrefixPrec uint8 = 11
