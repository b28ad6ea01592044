// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"naschgen/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections (usage examples) before the flag blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – two-lane NaSch initial-state generator\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nModel (required):")
		fmt.Fprintln(out, "      --n int                 Number of cars (> 0) [*]")
		fmt.Fprintln(out, "      --L int                 Lane length in cells (> 0) [*]")
		fmt.Fprintln(out, "      --vmax int              Speed limit in cells/step (≥ 0) [*]")
		fmt.Fprintln(out, "      --p-dec float           Random deceleration probability [0,1] [*]")
		fmt.Fprintln(out, "      --p-start float         Random-start probability [0,1] [*]")

		fmt.Fprintln(out, "\nLayout:")
		fmt.Fprintf(out, "      --steps int             Steps recorded for the simulator [%s]\n", def("steps"))
		fmt.Fprintf(out, "      --pos string            Positions per lane: even | random [%s]\n", def("pos"))
		fmt.Fprintf(out, "      --vel string            Velocities: zero | random [%s]\n", def("vel"))
		fmt.Fprintln(out, "      --seed int              RNG seed (unset = not reproducible)")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out path              Output file, '-' for STDOUT [%s]\n", def("out"))
		fmt.Fprintf(out, "      --format string         Output: text | json [%s]\n", def("format"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print a quickstart and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
		fmt.Fprintln(out, "\n[*] required")
	}
}
