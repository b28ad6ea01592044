// internal/engine/params.go
package engine

import (
	"errors"
	"fmt"
)

// Failure kinds. Both are fatal to a generation pass.
var (
	ErrParameter = errors.New("invalid parameter")
	ErrCapacity  = errors.New("lane capacity exceeded")
)

// PositionPolicy selects how cars are laid out within a lane.
type PositionPolicy string

// VelocityPolicy selects initial velocities.
type VelocityPolicy string

const (
	PosEven   PositionPolicy = "even"
	PosRandom PositionPolicy = "random"

	VelZero   VelocityPolicy = "zero"
	VelRandom VelocityPolicy = "random"
)

// DefaultSteps is the step count recorded when none is given.
const DefaultSteps = 1000

// Params describes one generation run.
type Params struct {
	N      int     // number of cars
	L      int     // lane length (cells)
	VMax   int     // speed limit (cells/step)
	PDec   float64 // random deceleration probability
	PStart float64 // slow-start probability
	Steps  int     // recorded for the simulator, not used here

	Pos PositionPolicy
	Vel VelocityPolicy

	Seed    int64
	SeedSet bool // false → header records "None"
}

// Validate checks everything that can be checked before drawing lanes.
func (p Params) Validate() error {
	if p.N <= 0 {
		return fmt.Errorf("%w: n must be > 0 (got %d)", ErrParameter, p.N)
	}
	if p.L <= 0 {
		return fmt.Errorf("%w: L must be > 0 (got %d)", ErrParameter, p.L)
	}
	if p.VMax < 0 {
		return fmt.Errorf("%w: vmax must be ≥ 0 (got %d)", ErrParameter, p.VMax)
	}
	// Written as !(in range) so NaN is rejected too.
	if !(p.PDec >= 0 && p.PDec <= 1) {
		return fmt.Errorf("%w: p_dec must be in [0,1] (got %v)", ErrParameter, p.PDec)
	}
	if !(p.PStart >= 0 && p.PStart <= 1) {
		return fmt.Errorf("%w: p_start must be in [0,1] (got %v)", ErrParameter, p.PStart)
	}
	switch p.Pos {
	case PosEven, PosRandom:
	default:
		return fmt.Errorf("%w: unknown position policy %q", ErrParameter, p.Pos)
	}
	switch p.Vel {
	case VelZero, VelRandom:
	default:
		return fmt.Errorf("%w: unknown velocity policy %q", ErrParameter, p.Vel)
	}
	// Two lanes of L cells cannot hold more than 2L distinct random positions,
	// whatever the lane draw turns out to be.
	if p.Pos == PosRandom && p.N-p.L > p.L {
		return fmt.Errorf("%w: %d cars cannot fit two lanes of %d cells", ErrCapacity, p.N, p.L)
	}
	return nil
}

// CheckCapacity reports ErrCapacity when a lane holds more cars than cells
// under the random policy. An empty lane always fits.
func CheckCapacity(pos PositionPolicy, L, n0, n1 int) error {
	if pos != PosRandom {
		return nil
	}
	if n0 > L || n1 > L {
		return fmt.Errorf("%w: per-lane count must be ≤ L=%d for collision-free placement (lane 0: %d, lane 1: %d)",
			ErrCapacity, L, n0, n1)
	}
	return nil
}
