package engine

// Reassemble merges the per-lane position sequences back into car order.
// The i-th position of a lane goes to the i-th car (by index) in that lane.
func Reassemble(lanes, pos0, pos1, vel []int) []Car {
	cars := make([]Car, len(lanes))
	c0, c1 := 0, 0
	for i, ln := range lanes {
		var p int
		if ln == 0 {
			p = pos0[c0]
			c0++
		} else {
			p = pos1[c1]
			c1++
		}
		cars[i] = Car{Lane: ln, Position: p, Velocity: vel[i]}
	}
	return cars
}
