// internal/output/read.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"naschgen/internal/engine"
)

// maxPrealloc bounds the car slice allocated up front from the header count.
const maxPrealloc = 1 << 16

// ReadText parses a file produced by WriteText. Policies are not recorded in
// the format and are left empty.
func ReadText(r io.Reader) (engine.State, error) {
	var st engine.State
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("line %d: unexpected end of input", line+1)
		}
		line++
		return strings.TrimSpace(sc.Text()), nil
	}
	atoi := func(name string) (int, error) {
		s, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("line %d: bad %s %q", line, name, s)
		}
		return v, nil
	}
	atof := func(name string) (float64, error) {
		s, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("line %d: bad %s %q", line, name, s)
		}
		return v, nil
	}

	p := &st.Params
	var err error
	if p.N, err = atoi("n"); err != nil {
		return st, err
	}
	if p.L, err = atoi("L"); err != nil {
		return st, err
	}
	if p.VMax, err = atoi("vmax"); err != nil {
		return st, err
	}
	if p.PDec, err = atof("p_dec"); err != nil {
		return st, err
	}
	if p.PStart, err = atof("p_start"); err != nil {
		return st, err
	}
	if p.Steps, err = atoi("steps"); err != nil {
		return st, err
	}
	seed, err := next()
	if err != nil {
		return st, err
	}
	if seed != NoSeed {
		v, perr := strconv.ParseInt(seed, 10, 64)
		if perr != nil {
			return st, fmt.Errorf("line %d: bad seed %q", line, seed)
		}
		p.Seed, p.SeedSet = v, true
	}
	if blank, err := next(); err != nil {
		return st, err
	} else if blank != "" {
		return st, fmt.Errorf("line %d: expected blank line after header", line)
	}
	if p.N < 0 {
		return st, fmt.Errorf("negative car count %d", p.N)
	}

	// The header is untrusted; grow as lines arrive instead of sizing from n.
	st.Cars = make([]engine.Car, 0, min(p.N, maxPrealloc))
	for i := 0; i < p.N; i++ {
		s, err := next()
		if err != nil {
			return st, err
		}
		f := strings.Fields(s)
		if len(f) != 3 {
			return st, fmt.Errorf("line %d: want 3 fields, got %d", line, len(f))
		}
		var c engine.Car
		for j, dst := range []*int{&c.Lane, &c.Position, &c.Velocity} {
			v, err := strconv.Atoi(f[j])
			if err != nil {
				return st, fmt.Errorf("line %d: bad integer %q", line, f[j])
			}
			*dst = v
		}
		st.Cars = append(st.Cars, c)
	}
	return st, nil
}
