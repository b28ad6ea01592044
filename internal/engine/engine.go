// internal/engine/engine.go
package engine

import "math/rand/v2"

// Car is one vehicle in its initial state.
type Car struct {
	Lane     int
	Position int
	Velocity int
}

// State is a complete initial condition: the run parameters and every car
// in index order.
type State struct {
	Params Params
	Cars   []Car
}

// LaneCounts returns how many cars sit in lane 0 and lane 1.
func (s State) LaneCounts() (n0, n1 int) {
	lanes := make([]int, len(s.Cars))
	for i, c := range s.Cars {
		lanes[i] = c.Lane
	}
	return CountLanes(lanes)
}

// Generate builds the initial state for p, drawing every random value from r.
// On error nothing has been produced and r may have been partially consumed.
func Generate(p Params, r *rand.Rand) (State, error) {
	if err := p.Validate(); err != nil {
		return State{}, err
	}

	lanes := AssignLanes(r, p.N)
	n0, n1 := CountLanes(lanes)
	if err := CheckCapacity(p.Pos, p.L, n0, n1); err != nil {
		return State{}, err
	}

	pos0, pos1 := LanePositions(r, p.Pos, p.L, n0, n1)
	vel := AssignVelocities(r, p.N, p.VMax, p.Vel)

	return State{Params: p, Cars: Reassemble(lanes, pos0, pos1, vel)}, nil
}
