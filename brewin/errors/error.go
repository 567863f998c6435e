package errors

import "fmt"

// All ranges inclusive
type Span struct {
	Start    Location `json:"start" yaml:"start"`
	End      Location `json:"end" yaml:"end"`
	Filename string   `json:"filename" yaml:"filename"`
}

func (self Span) IsEmpty() bool {
	return self.Start.Line == 0 && self.Start.Column == 0 && self.End.Line == 0 && self.End.Column == 0
}

func (self Span) String() string {
	return fmt.Sprintf("%s:%d:%d", self.Filename, self.Start.Line, self.Start.Column)
}

type Location struct {
	Line   uint `json:"line" yaml:"line"`
	Column uint `json:"column" yaml:"column"`
	Index  uint `json:"index" yaml:"index"`
}

func NewLocation() Location {
	return Location{
		Line:   1,
		Column: 1,
		Index:  0,
	}
}

func (self *Location) Advance(newline bool) {
	self.Index++
	if newline {
		self.Column = 1
		self.Line++
	} else {
		self.Column++
	}
}

func (self Location) Until(end Location, filename string) Span {
	return Span{
		Start:    self,
		End:      end,
		Filename: filename,
	}
}

//
// Error
//

type ErrorKind uint8

const (
	SyntaxError ErrorKind = iota
	NameError
	TypeError
	TerminationError
)

func (self ErrorKind) String() string {
	switch self {
	case SyntaxError:
		return "SyntaxError"
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case TerminationError:
		return "TerminationError"
	default:
		panic("A new ErrorKind was added without updating this code")
	}
}

// Name and type errors are raised by the language itself.
// The remaining kinds originate in the front end or the host.
func (self ErrorKind) IsLanguageError() bool {
	return self == NameError || self == TypeError
}

type Error struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
	Notes   []string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Span    Span      `json:"span" yaml:"span"`
}

func (self Error) Error() string {
	if self.Span.IsEmpty() {
		return fmt.Sprintf("%s: %s", self.Kind, self.Message)
	}
	return fmt.Sprintf("%s: %s (at %s)", self.Kind, self.Message, self.Span)
}

func NewError(span Span, message string, kind ErrorKind) *Error {
	return &Error{
		Span:    span,
		Message: message,
		Kind:    kind,
		Notes:   make([]string, 0),
	}
}

func NewSyntaxError(span Span, message string) *Error {
	return NewError(span, message, SyntaxError)
}

func NewNameError(span Span, message string) *Error {
	return NewError(span, message, NameError)
}

func NewTypeError(span Span, message string) *Error {
	return NewError(span, message, TypeError)
}
