package engine

import "math/rand/v2"

// AssignLanes draws a lane label in {0,1} for each car, in car-index order.
func AssignLanes(r *rand.Rand, n int) []int {
	lanes := make([]int, n)
	for i := range lanes {
		lanes[i] = r.IntN(2)
	}
	return lanes
}

// CountLanes returns the number of lane-0 and lane-1 labels.
func CountLanes(lanes []int) (n0, n1 int) {
	for _, ln := range lanes {
		if ln == 0 {
			n0++
		} else {
			n1++
		}
	}
	return n0, n1
}
