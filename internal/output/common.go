// internal/output/common.go
package output

import (
	"strconv"
	"strings"

	"naschgen/internal/engine"
	"naschgen/pkg/api"
)

// NoSeed is written in place of the seed when none was given.
const NoSeed = "None"

// FormatProb renders a probability in shortest round-trip form, keeping a
// trailing ".0" on integral values: 0.1 → "0.1", 1 → "1.0", 1e-5 → "1e-05".
func FormatProb(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// FormatSeed renders the header seed line.
func FormatSeed(p engine.Params) string {
	if !p.SeedSet {
		return NoSeed
	}
	return strconv.FormatInt(p.Seed, 10)
}

// ToAPI converts a generated state to the v1 wire schema.
func ToAPI(st engine.State) api.StateV1 {
	p := st.Params
	out := api.StateV1{
		N: p.N, L: p.L, VMax: p.VMax,
		PDec: p.PDec, PStart: p.PStart, Steps: p.Steps,
		Pos: string(p.Pos), Vel: string(p.Vel),
		Cars: make([]api.CarV1, len(st.Cars)),
	}
	if p.SeedSet {
		seed := p.Seed
		out.Seed = &seed
	}
	for i, c := range st.Cars {
		out.Cars[i] = api.CarV1{Lane: c.Lane, Position: c.Position, Velocity: c.Velocity}
	}
	return out
}
