package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brewin-lang/brewin/brewin/diagnostic"
	berrors "github.com/brewin-lang/brewin/brewin/errors"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

// Connects a running program to the terminal.
// Interactive input goes through liner, piped input is read line by line.
type consoleExecutor struct {
	out           io.Writer
	errOut        io.Writer
	source        string
	color         bool
	promptNewline bool
	prompt        string
	line          *liner.State
	reader        *bufio.Reader
}

func newConsoleExecutor(source string, color bool, promptNewline bool) *consoleExecutor {
	executor := &consoleExecutor{
		out:           os.Stdout,
		errOut:        os.Stderr,
		source:        source,
		color:         color,
		promptNewline: promptNewline,
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		executor.line = liner.NewLiner()
		executor.line.SetCtrlCAborts(true)
	} else {
		executor.reader = bufio.NewReader(os.Stdin)
	}

	return executor
}

func (self *consoleExecutor) Close() {
	if self.line != nil {
		self.line.Close()
	}
}

func (self *consoleExecutor) Output(line string) error {
	_, err := fmt.Fprintln(self.out, line)
	return err
}

// The prompt is shown when input is requested.
func (self *consoleExecutor) Prompt(text string) error {
	if self.promptNewline {
		return self.Output(text)
	}
	self.prompt = text
	return nil
}

func (self *consoleExecutor) GetInput() (string, error) {
	prompt := self.prompt
	self.prompt = ""

	if self.line != nil {
		input, err := self.line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", fmt.Errorf("input aborted")
		}
		if err != nil {
			return "", err
		}
		self.line.AppendHistory(input)
		return input, nil
	}

	if prompt != "" {
		if _, err := fmt.Fprint(self.out, prompt); err != nil {
			return "", err
		}
	}

	input, err := self.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}

	return strings.TrimRight(input, "\r\n"), nil
}

func (self *consoleExecutor) Error(err berrors.Error) {
	fmt.Fprintln(self.errOut, diagnostic.FromError(err).Display(self.source, self.color))
}
