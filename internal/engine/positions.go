// internal/engine/positions.go
package engine

import (
	"math/bits"
	"math/rand/v2"
	"sort"
)

// EvenPositions spreads k cars over L cells: position i is floor(i*L/k).
// The result is strictly increasing when k ≤ L and empty when k = 0.
func EvenPositions(L, k int) []int {
	if k <= 0 {
		return []int{}
	}
	out := make([]int, k)
	for i := range out {
		// 128-bit product; the quotient is < L, so Div64 cannot overflow.
		hi, lo := bits.Mul64(uint64(i), uint64(L))
		q, _ := bits.Div64(hi, lo, uint64(k))
		out[i] = int(q)
	}
	return out
}

// RandomPositions draws a uniform k-subset of [0, L) without replacement and
// returns it sorted ascending. The caller guarantees 0 ≤ k ≤ L.
//
// Floyd's algorithm: exactly k draws and O(k) memory, independent of L.
func RandomPositions(r *rand.Rand, L, k int) []int {
	if k <= 0 {
		return []int{}
	}
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := L - k; j < L; j++ {
		t := r.IntN(j + 1)
		if _, dup := seen[t]; dup {
			t = j
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// LanePositions generates both lanes under the given policy, lane 0 first.
func LanePositions(r *rand.Rand, pos PositionPolicy, L, n0, n1 int) (pos0, pos1 []int) {
	if pos == PosRandom {
		pos0 = RandomPositions(r, L, n0)
		pos1 = RandomPositions(r, L, n1)
		return pos0, pos1
	}
	return EvenPositions(L, n0), EvenPositions(L, n1)
}
