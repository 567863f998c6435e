package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/brewin-lang/brewin/brewin/suite"
	"github.com/urfave/cli/v2"
)

func validateDir(dir string, numWorkers int, s settings) error {
	cases, err := suite.Discover(dir)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("No programs found in `%s`", dir)
	}

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	start := time.Now()
	processed := 0

	results := suite.Run(context.Background(), cases, numWorkers, s.options(), func(result suite.Result) {
		processed++
		printProgress(result, processed, len(cases), s.color)
	})

	failed := make([]suite.Result, 0)
	for _, result := range results {
		if !result.Passed() {
			failed = append(failed, result)
		}
	}

	for _, result := range failed {
		fmt.Printf("\n=== %s ===\n--- expected\n%s--- got\n%s", result.Case.Name, result.Case.Expected, result.Output)
	}

	fmt.Printf(
		"\n%s%d passed%s, %s%d failed%s | elapsed: %s\n",
		paint(s.color, "\x1b[1;32m"),
		len(results)-len(failed),
		paint(s.color, "\x1b[1;0m"),
		paint(s.color, "\x1b[1;31m"),
		len(failed),
		paint(s.color, "\x1b[1;0m"),
		fmtDuration(time.Since(start)),
	)

	if len(failed) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func printProgress(result suite.Result, processed int, total int, color bool) {
	status := paint(color, "\x1b[1;32m") + "PASS" + paint(color, "\x1b[1;0m")
	if !result.Passed() {
		status = paint(color, "\x1b[1;31m") + "FAIL" + paint(color, "\x1b[1;0m")
	}

	fmt.Printf("(%3d / %d) %s %s\n", processed, total, status, result.Case.Name)
}

func paint(color bool, code string) string {
	if !color {
		return ""
	}
	return code
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Millisecond)

	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d.%03d", m, s, ms)
}
