// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"math/rand/v2"

	"naschgen/internal/engine"
)

// ResolveSeed returns the seed to build the source from. An explicit seed is
// used as-is; otherwise a fresh one is drawn from the runtime-seeded global
// generator, so unseeded runs differ from each other.
func ResolveSeed(p engine.Params) int64 {
	if p.SeedSet {
		return p.Seed
	}
	return rand.Int64()
}

// InputWarnings lists parameter choices that generate fine but that the
// downstream simulator will refuse or cannot reproduce.
// Rules:
//   - no seed → header says "None", which the simulator cannot read as a number
//   - vmax == 0 → simulator requires vmax > 0
//   - steps <= 0 → simulator requires steps > 0
func InputWarnings(p engine.Params) []string {
	var warns []string
	if !p.SeedSet {
		warns = append(warns, "no --seed given; output is not reproducible and the seed line reads \"None\"")
	}
	if p.VMax == 0 {
		warns = append(warns, "--vmax 0: the simulator rejects inputs without a positive speed limit")
	}
	if p.Steps <= 0 {
		warns = append(warns, fmt.Sprintf("--steps %d: the simulator rejects non-positive step counts", p.Steps))
	}
	return warns
}

// LayoutWarnings flags lanes whose even layout repeats positions (count > L).
// The random policy never gets here with an overfull lane.
func LayoutWarnings(st engine.State) []string {
	if st.Params.Pos != engine.PosEven {
		return nil
	}
	var warns []string
	n0, n1 := st.LaneCounts()
	for lane, k := range []int{n0, n1} {
		if k > st.Params.L {
			warns = append(warns, fmt.Sprintf("lane %d holds %d cars on %d cells; even positions repeat", lane, k, st.Params.L))
		}
	}
	return warns
}
