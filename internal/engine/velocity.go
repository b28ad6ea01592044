package engine

import "math/rand/v2"

// AssignVelocities returns one velocity per car in car-index order.
// VelZero consumes no randomness; VelRandom draws uniformly from [0, vmax].
func AssignVelocities(r *rand.Rand, n, vmax int, policy VelocityPolicy) []int {
	vel := make([]int, n)
	if policy != VelRandom {
		return vel
	}
	for i := range vel {
		vel[i] = int(r.Uint64N(uint64(vmax) + 1))
	}
	return vel
}
