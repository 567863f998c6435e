package suite

import (
	"context"

	"github.com/brewin-lang/brewin/brewin"
)

type workerProgress struct {
	done   bool
	idx    int
	result Result
}

func chunkInput[T any](input []T, chunkSize uint) [][]T {
	if chunkSize == 0 {
		chunkSize = 1
	}

	chunks := make([][]T, 0)
	for start := 0; start < len(input); start += int(chunkSize) {
		end := start + int(chunkSize)
		if end > len(input) {
			end = len(input)
		}
		chunks = append(chunks, input[start:end])
	}

	return chunks
}

// Runs all cases on up to `numWorkers` goroutines.
// Results are returned in the order of `cases`, `onResult` is invoked as soon as a case finishes.
func Run(
	ctx context.Context,
	cases []Case,
	numWorkers int,
	options brewin.Options,
	onResult func(Result),
) []Result {
	if numWorkers < 1 {
		numWorkers = 1
	}

	results := make([]Result, len(cases))
	if len(cases) == 0 {
		return results
	}

	chunkSize := (len(cases) + numWorkers - 1) / numWorkers
	chunks := chunkInput(cases, uint(chunkSize))

	progress := make(chan workerProgress)
	for idx, chunk := range chunks {
		go worker(ctx, chunk, idx*chunkSize, options, progress)
	}

	running := len(chunks)
	for running > 0 {
		p := <-progress
		if p.done {
			running--
			continue
		}

		results[p.idx] = p.result
		if onResult != nil {
			onResult(p.result)
		}
	}

	return results
}

func worker(ctx context.Context, chunk []Case, offset int, options brewin.Options, progress chan workerProgress) {
	for idx, testCase := range chunk {
		progress <- workerProgress{
			done:   false,
			idx:    offset + idx,
			result: RunCase(ctx, testCase, options),
		}
	}

	progress <- workerProgress{done: true}
}
