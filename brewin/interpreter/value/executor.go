package value

// The I/O boundary between the interpreter and its host.
type Executor interface {
	// Writes one line of program output
	Output(line string) error
	// Blocks until one line of external input is available
	GetInput() (string, error)
}

// Optionally implemented by executors which display the `inputi` prompt differently from regular output.
type Prompter interface {
	Prompt(text string) error
}
