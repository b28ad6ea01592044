package cli

import (
	"flag"
	"fmt"
	"io"

	"naschgen/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet with naschgen's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --n 100 --L 1000 --vmax 5 --p-dec 0.1 --p-start 0.2 --seed 1\n", name)
		fmt.Fprintf(out, "  %s --n 500 --L 400 --vmax 5 --p-dec 0.1 --p-start 0.2 --pos random --vel random --seed 7 -o cars.txt\n", name)
	})
	return fs
}

// PrintExamples prints the quickstart for --examples.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Two-lane NaSch initial states for the traffic simulator.")
		_, _ = fmt.Fprintln(w, "Each car draws a lane; positions never collide within a lane.")
		_, _ = fmt.Fprintln(w, "\nEvenly spaced, standing start (reproducible):")
		_, _ = fmt.Fprintf(w, "  %s --n 100 --L 1000 --vmax 5 --p-dec 0.1 --p-start 0.2 --seed 1\n", name)
		_, _ = fmt.Fprintln(w, "\nRandom layout and speeds, JSON to STDOUT:")
		_, _ = fmt.Fprintf(w, "  %s --n 50 --L 60 --vmax 5 --p-dec 0.1 --p-start 0.2 \\\n", name)
		_, _ = fmt.Fprintln(w, "      --pos random --vel random --seed 7 --format json -o -")
	})
}
