package brewin

import (
	"io"
	"strings"

	"github.com/brewin-lang/brewin/brewin/errors"
)

// An executor which keeps everything in memory.
// Input lines are consumed in order, reading past the last one fails with `io.EOF`.
type TestingExecutor struct {
	OutputLines []string
	Input       []string
	Errors      []errors.Error
}

func NewTestingExecutor(input ...string) *TestingExecutor {
	return &TestingExecutor{
		OutputLines: make([]string, 0),
		Input:       input,
		Errors:      make([]errors.Error, 0),
	}
}

func (self *TestingExecutor) Output(line string) error {
	self.OutputLines = append(self.OutputLines, line)
	return nil
}

func (self *TestingExecutor) GetInput() (string, error) {
	if len(self.Input) == 0 {
		return "", io.EOF
	}

	line := self.Input[0]
	self.Input = self.Input[1:]
	return line, nil
}

func (self *TestingExecutor) Error(err errors.Error) {
	self.Errors = append(self.Errors, err)
}

// All output lines, each terminated by a newline.
func (self *TestingExecutor) Transcript() string {
	var builder strings.Builder
	for _, line := range self.OutputLines {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}
