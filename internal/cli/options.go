// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"naschgen/internal/clibase"
	"naschgen/internal/engine"
	"naschgen/internal/writers"
)

// StdoutPath makes --out write to standard output.
const StdoutPath = "-"

// Options holds all CLI flags.
type Options struct {
	// Model
	N      int
	L      int
	VMax   int
	PDec   float64
	PStart float64
	Steps  int

	// Layout
	Pos     string
	Vel     string
	Seed    int64
	SeedSet bool

	// Output
	Out    string
	Format string

	// Misc
	Quiet    bool
	Examples bool
	Version  bool
}

// Params converts parsed options into generator parameters.
func (o Options) Params() engine.Params {
	return engine.Params{
		N: o.N, L: o.L, VMax: o.VMax,
		PDec: o.PDec, PStart: o.PStart, Steps: o.Steps,
		Pos: engine.PositionPolicy(o.Pos), Vel: engine.VelocityPolicy(o.Vel),
		Seed: o.Seed, SeedSet: o.SeedSet,
	}
}

// seedValue is an optional int64 flag; set records whether it was given.
type seedValue struct {
	dst *int64
	set *bool
}

func (s *seedValue) String() string {
	if s.set == nil || !*s.set {
		return ""
	}
	return strconv.FormatInt(*s.dst, 10)
}

func (s *seedValue) Set(v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return errors.New("must be an integer")
	}
	*s.dst, *s.set = n, true
	return nil
}

var requiredFlags = []string{"n", "L", "vmax", "p-dec", "p-start"}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Model
	fs.IntVar(&opt.N, "n", 0, "number of cars (> 0) [*]")
	fs.IntVar(&opt.L, "L", 0, "lane length in cells (> 0) [*]")
	fs.IntVar(&opt.VMax, "vmax", 0, "speed limit (≥ 0) [*]")
	fs.Float64Var(&opt.PDec, "p-dec", 0, "random deceleration probability [0,1] [*]")
	fs.Float64Var(&opt.PStart, "p-start", 0, "random-start probability [0,1] [*]")
	fs.IntVar(&opt.Steps, "steps", engine.DefaultSteps, "steps recorded for the simulator [1000]")

	// Layout
	fs.StringVar(&opt.Pos, "pos", string(engine.PosEven), "positions per lane: even | random [even]")
	fs.StringVar(&opt.Vel, "vel", string(engine.VelZero), "velocities: zero | random [zero]")
	fs.Var(&seedValue{dst: &opt.Seed, set: &opt.SeedSet}, "seed", "RNG seed (unset = not reproducible)")

	// Output
	fs.StringVar(&opt.Out, "out", "input.txt", "output path, '-' for STDOUT [input.txt]")
	fs.StringVar(&opt.Out, "o", "input.txt", "alias of --out")
	fs.StringVar(&opt.Format, "format", "text", "output: text | json [text]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Examples, "examples", false, "print a quickstart and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	var missing []string
	for _, name := range requiredFlags {
		if !seen[name] {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return opt, fmt.Errorf("missing required flag(s): %s", strings.Join(missing, ", "))
	}
	switch engine.PositionPolicy(opt.Pos) {
	case engine.PosEven, engine.PosRandom:
	default:
		return opt, fmt.Errorf("invalid --pos %q (want even | random)", opt.Pos)
	}
	switch engine.VelocityPolicy(opt.Vel) {
	case engine.VelZero, engine.VelRandom:
	default:
		return opt, fmt.Errorf("invalid --vel %q (want zero | random)", opt.Vel)
	}
	if _, ok := writers.StateWriters[opt.Format]; !ok {
		return opt, fmt.Errorf("invalid --format %q (want %s)", opt.Format, strings.Join(writers.Formats(), " | "))
	}
	if opt.Out == "" {
		return opt, errors.New("--out must not be empty")
	}
	return opt, nil
}
