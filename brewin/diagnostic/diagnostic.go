package diagnostic

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brewin-lang/brewin/brewin/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type DiagnosticLevel uint8

const (
	DiagnosticLevelHint DiagnosticLevel = iota
	DiagnosticLevelInfo
	DiagnosticLevelWarning
	DiagnosticLevelError
)

func (self DiagnosticLevel) String() string {
	switch self {
	case DiagnosticLevelHint:
		return "Hint"
	case DiagnosticLevelInfo:
		return "Info"
	case DiagnosticLevelWarning:
		return "Warning"
	case DiagnosticLevelError:
		return "Error"
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

//
// Diagnostic
//

type Diagnostic struct {
	Level   DiagnosticLevel `json:"level"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Notes   []string        `json:"notes"`
	Span    errors.Span     `json:"span"`
}

// Converts an error of the front end or the interpreter into a displayable diagnostic.
func FromError(err errors.Error) Diagnostic {
	return Diagnostic{
		Level:   DiagnosticLevelError,
		Title:   headline(err.Kind),
		Message: err.Message,
		Notes:   err.Notes,
		Span:    err.Span,
	}
}

// `NameError` becomes `Name Error`
func headline(kind errors.ErrorKind) string {
	raw := kind.String()
	var words strings.Builder
	for idx, char := range raw {
		if idx > 0 && unicode.IsUpper(char) {
			words.WriteRune(' ')
		}
		words.WriteRune(unicode.ToLower(char))
	}

	caser := cases.Title(language.AmericanEnglish)
	return caser.String(words.String())
}

func (self Diagnostic) heading() string {
	if self.Title == "" {
		return self.Level.String()
	}
	return self.Title
}

// Renders the diagnostic against the source code of the program.
// If `color` is false, no ANSI escape sequences are emitted.
func (self Diagnostic) Display(program string, color bool) string {
	p := painter{enabled: color}

	singleMarker := "^"
	markerMul := ""
	var col uint8 = 0

	switch self.Level {
	case DiagnosticLevelHint:
		markerMul = "~"
		col = 5 // magenta
	case DiagnosticLevelInfo:
		markerMul = "~"
		col = 4 // blue
	case DiagnosticLevelWarning:
		markerMul = "~"
		col = 3 // yellow
	case DiagnosticLevelError:
		markerMul = "^"
		col = 1 // red
	}

	notes := ""
	for _, note := range self.Notes {
		notes += fmt.Sprintf("%s - note:%s %s\n", p.col(36, true), p.reset(), note)
	}

	lines := strings.Split(program, "\n")

	// take special action if there is no useful span / the source code is empty
	if self.Span.IsEmpty() || program == "" || int(self.Span.Start.Line) > len(lines) {
		location := self.Span.Filename
		if location == "" {
			location = "<unknown>"
		}
		return fmt.Sprintf(
			"%s%s%s in %s%s\n%s\n%s",
			p.col(col+30, true),
			self.heading(),
			p.col(39, true),
			location,
			p.reset(),
			self.Message,
			notes,
		)
	}

	line1 := ""
	if self.Span.Start.Line > 1 {
		line1 = fmt.Sprintf("\n %s%- 3d | %s%s", p.col(90, false), self.Span.Start.Line-1, p.reset(), lines[self.Span.Start.Line-2])
	}
	line2 := fmt.Sprintf(" %s%- 3d | %s%s", p.col(90, false), self.Span.Start.Line, p.reset(), lines[self.Span.Start.Line-1])
	line3 := ""
	if int(self.Span.Start.Line) < len(lines) {
		line3 = fmt.Sprintf("\n %s%- 3d | %s%s", p.col(90, false), self.Span.Start.Line+1, p.reset(), lines[self.Span.Start.Line])
	}

	markers := ""
	if self.Span.Start.Line == self.Span.End.Line {
		if self.Span.Start.Column >= self.Span.End.Column {
			markers = singleMarker
		} else {
			// spans are inclusive
			markers = strings.Repeat(markerMul, int(self.Span.End.Column-self.Span.Start.Column)+1)
		}
	} else {
		s := "s"
		if self.Span.End.Line-self.Span.Start.Line == 1 {
			s = ""
		}

		rest := len(lines[self.Span.Start.Line-1]) - int(self.Span.Start.Column) + 1
		if rest < 1 {
			rest = 1
		}

		markers = fmt.Sprintf(
			"%s ...\n%s%s+ %d more line%s%s",
			strings.Repeat(markerMul, rest),
			strings.Repeat(" ", int(self.Span.Start.Column)+6),
			p.col(32, true),
			self.Span.End.Line-self.Span.Start.Line,
			s,
			p.reset(),
		)
	}
	marker := fmt.Sprintf(
		"%s%s%s%s",
		p.col(col+30, true),
		strings.Repeat(" ", int(self.Span.Start.Column+6)),
		markers,
		p.reset(),
	)

	return fmt.Sprintf(
		"%s%s%s at %s:%d:%d%s\n%s\n%s\n%s%s\n\n%s%s%s\n%s",
		p.col(col+30, true),
		self.heading(),
		p.col(39, false),
		self.Span.Filename,
		self.Span.Start.Line,
		self.Span.Start.Column,
		p.reset(),
		line1,
		line2,
		marker,
		line3,
		p.col(col+30, true),
		self.Message,
		p.reset(),
		notes,
	)
}

type painter struct {
	enabled bool
}

func (self painter) col(color uint8, bold bool) string {
	if !self.enabled {
		return ""
	}
	if bold {
		return fmt.Sprintf("\x1b[1;%dm", color)
	}
	return fmt.Sprintf("\x1b[%dm", color)
}

func (self painter) reset() string {
	if !self.enabled {
		return ""
	}
	return "\x1b[0m"
}
