package value

import (
	"github.com/brewin-lang/brewin/brewin/errors"
)

type RuntimeErrorKind uint8

const (
	NameErrorKind RuntimeErrorKind = iota
	TypeErrorKind
)

func (self RuntimeErrorKind) String() string {
	switch self {
	case NameErrorKind:
		return "NameError"
	case TypeErrorKind:
		return "TypeError"
	default:
		panic("A new ErrorKind was added without updating this code")
	}
}

func (self RuntimeErrorKind) ErrorKind() errors.ErrorKind {
	switch self {
	case NameErrorKind:
		return errors.NameError
	case TypeErrorKind:
		return errors.TypeError
	default:
		panic("A new ErrorKind was added without updating this code")
	}
}

type InterruptKind uint8

const (
	TerminateInterruptKind InterruptKind = iota
	ReturnInterruptKind
	FatalExceptionInterruptKind
)

func (self InterruptKind) String() string {
	switch self {
	case TerminateInterruptKind:
		return "terminate"
	case ReturnInterruptKind:
		return "return"
	case FatalExceptionInterruptKind:
		return "fatal exception"
	default:
		panic("A new interrupt kind was added without updating this code")
	}
}

// Anything which stops the sequential execution of statements.
// A statement which completes normally yields no interrupt.
type Interrupt interface {
	Kind() InterruptKind
	Message() string
	// This function may panic if the target value has no span
	GetSpan() errors.Span
}

// Converts a fatal interrupt into an error which can be displayed to the user.
// Return interrupts never leave a function call and therefore cannot be converted.
func IntoError(i Interrupt) *errors.Error {
	switch i := i.(type) {
	case RuntimeErr:
		err := errors.NewError(i.Span, i.MessageInternal, i.ErrKind.ErrorKind())
		err.Notes = append(err.Notes, i.Notes...)
		return err
	case TerminationInterrupt:
		return errors.NewError(i.Span, i.Reason, errors.TerminationError)
	default:
		panic("A new interrupt kind was added without updating this code")
	}
}

//
// Return interrupt
//

type ReturnInterrupt struct {
	ReturnValue Value
}

func (self ReturnInterrupt) Kind() InterruptKind { return ReturnInterruptKind }
func (self ReturnInterrupt) Message() string     { return "<return-interrupt>" }
func (self ReturnInterrupt) GetSpan() errors.Span {
	panic("This interrupt kind does not contain a span")
}

func NewReturnInterrupt(value Value) *Interrupt {
	i := Interrupt(ReturnInterrupt{ReturnValue: value})
	return &i
}

//
// Runtime error
//

type RuntimeErr struct {
	ErrKind         RuntimeErrorKind
	MessageInternal string
	Notes           []string
	Span            errors.Span
}

func (self RuntimeErr) Kind() InterruptKind  { return FatalExceptionInterruptKind }
func (self RuntimeErr) Message() string      { return self.MessageInternal }
func (self RuntimeErr) GetSpan() errors.Span { return self.Span }

func NewRuntimeErr(message string, kind RuntimeErrorKind, span errors.Span, notes ...string) *Interrupt {
	i := Interrupt(RuntimeErr{
		MessageInternal: message,
		ErrKind:         kind,
		Notes:           notes,
		Span:            span,
	})
	return &i
}

//
// Termination interrupt
//

// Raised by the host environment rather than the program:
// cancellation, the call depth limit and failing I/O.
type TerminationInterrupt struct {
	Reason string
	Span   errors.Span
}

func (self TerminationInterrupt) Kind() InterruptKind  { return TerminateInterruptKind }
func (self TerminationInterrupt) Message() string      { return self.Reason }
func (self TerminationInterrupt) GetSpan() errors.Span { return self.Span }

func NewTerminationInterrupt(reason string, span errors.Span) *Interrupt {
	i := Interrupt(TerminationInterrupt{Reason: reason, Span: span})
	return &i
}
