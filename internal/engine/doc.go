// Package engine contains the initial-state generator core. It never imports app,
// writers, cli, or output; keep it domain-only.
//
// All randomness flows through one *rand.Rand in a fixed order:
// lane labels (car order), lane-0 positions, lane-1 positions, velocities
// (car order). Reordering these stages changes the output for a given seed.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for the stable JSON wire type.
package engine
