// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"naschgen/internal/cli"
	"naschgen/internal/clibase"
	"naschgen/internal/cmdutil"
	"naschgen/internal/engine"
	"naschgen/internal/runutil"
	"naschgen/internal/version"
	"naschgen/internal/writers"
)

const name = "naschgen"

// flush writes out buffered stdout and maps the result to an exit code.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flush(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, 0)
	}

	params := opts.Params()
	if err := params.Validate(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	cmdutil.WarnAll(stderr, opts.Quiet, runutil.InputWarnings(params))

	st, err := engine.Generate(params, engine.NewSource(runutil.ResolveSeed(params)))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	cmdutil.WarnAll(stderr, opts.Quiet, runutil.LayoutWarnings(st))

	// Nothing has touched the filesystem yet; bail out cleanly if interrupted.
	if parent.Err() != nil {
		return 130
	}

	if opts.Out == cli.StdoutPath {
		if err := writers.WriteState(opts.Format, outw, st); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return flush(outw, stderr, 0)
	}

	err = writers.AtomicFile(opts.Out, func(w io.Writer) error {
		return writers.WriteState(opts.Format, w, st)
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: write %s: %v\n", opts.Out, err)
		return 3
	}

	abs, err := filepath.Abs(opts.Out)
	if err != nil {
		abs = opts.Out
	}
	_, _ = fmt.Fprintf(outw, "Wrote %s\n", abs)
	return flush(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
