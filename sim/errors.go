package sim

import "github.com/pkg/errors"

// ErrInvalidInput marks a job list or configuration rejected before the simulation starts.
// No simulation state is produced when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// ErrStalledSimulation marks an internal invariant violation: jobs remain incomplete but no
// future event exists. Unreachable for validated input.
var ErrStalledSimulation = errors.New("stalled simulation")
