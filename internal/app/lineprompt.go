package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/j-veylop/covid-tracker/internal/logger"
	"github.com/j-veylop/covid-tracker/internal/normalize"
)

// AskLines is the non-interactive prompt: it reads answers one line at a
// time and asks again while an answer names no countries. Reaching the end
// of input without a usable answer selects the defaults.
func AskLines(in io.Reader, out io.Writer) ([]string, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s\n%s\n> ", Question, defaultsHint())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read answer: %w", err)
			}
			fmt.Fprintln(out)
			logger.Debug("input closed, using default countries")
			return append([]string(nil), normalize.DefaultTargets...), nil
		}

		if targets := normalize.Resolve(scanner.Text()); targets != nil {
			return targets, nil
		}
		fmt.Fprintln(out, retryHint)
	}
}
