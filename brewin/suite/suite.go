package suite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brewin-lang/brewin/brewin"
	"github.com/brewin-lang/brewin/brewin/errors"
)

const (
	SourceExt   = ".br"
	InputExt    = ".in"
	ExpectedExt = ".out"
)

// A program together with the input it reads and the transcript it must produce.
type Case struct {
	Name     string
	Program  string
	Input    []string
	Expected string
}

type Result struct {
	Case   Case
	Output string
	Err    *errors.Error
}

func (self Result) Passed() bool {
	return self.Output == self.Case.Expected
}

// Collects every program in `dir` which has an expected output file next to it.
// Input files are optional.
func Discover(dir string) ([]Case, error) {
	sources, err := filepath.Glob(filepath.Join(dir, "*"+SourceExt))
	if err != nil {
		return nil, err
	}
	sort.Strings(sources)

	cases := make([]Case, 0, len(sources))
	for _, source := range sources {
		base := strings.TrimSuffix(source, SourceExt)

		program, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("could not read program: %w", err)
		}

		expected, err := os.ReadFile(base + ExpectedExt)
		if err != nil {
			return nil, fmt.Errorf("could not read expected output of `%s`: %w", source, err)
		}

		input := make([]string, 0)
		if raw, err := os.ReadFile(base + InputExt); err == nil {
			input = splitLines(string(raw))
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read input of `%s`: %w", source, err)
		}

		cases = append(cases, Case{
			Name:     filepath.Base(source),
			Program:  string(program),
			Input:    input,
			Expected: string(expected),
		})
	}

	return cases, nil
}

func splitLines(raw string) []string {
	raw = strings.TrimSuffix(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if raw == "" {
		return make([]string, 0)
	}
	return strings.Split(raw, "\n")
}

// The output of a program followed by the kind of error which stopped it, if any.
func Transcript(executor *brewin.TestingExecutor, err *errors.Error) string {
	output := executor.Transcript()
	if err != nil {
		output += fmt.Sprintf("error: %s\n", err.Kind)
	}
	return output
}

func RunCase(ctx context.Context, testCase Case, options brewin.Options) Result {
	input := make([]string, len(testCase.Input))
	copy(input, testCase.Input)

	executor := brewin.NewTestingExecutor(input...)
	_, err := brewin.Run(ctx, executor, testCase.Name, testCase.Program, options)

	return Result{
		Case:   testCase,
		Output: Transcript(executor, err),
		Err:    err,
	}
}
