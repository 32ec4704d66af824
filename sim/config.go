package sim

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// SimConfig groups the scheduling parameters of a run.
type SimConfig struct {
	NumCPUs   int     // number of simulated processors (must be > 0)
	ChunkUnit float64 // maximum chunk size (must be > 0)
	Quantum   float64 // minimum interval between scheduling decisions (0 = schedule on every event)
}

// Validate rejects configurations no simulation can run under.
func (c SimConfig) Validate() error {
	if c.NumCPUs <= 0 {
		return errors.Wrapf(ErrInvalidInput, "number of CPUs must be positive, got %d", c.NumCPUs)
	}
	if err := validateFinitePositive("chunk unit", c.ChunkUnit); err != nil {
		return err
	}
	if math.IsNaN(c.Quantum) || math.IsInf(c.Quantum, 0) || c.Quantum < 0 {
		return errors.Wrapf(ErrInvalidInput, "quantum must be a non-negative finite number, got %f", c.Quantum)
	}
	return nil
}

// Quantized reports whether scheduling decisions are gated by a quantum.
func (c SimConfig) Quantized() bool {
	return c.Quantum > 0
}

func validateJobSpecs(specs []JobSpec) error {
	if len(specs) == 0 {
		return errors.Wrap(ErrInvalidInput, "at least one job is required")
	}
	seen := make(map[string]int, len(specs))
	for i, s := range specs {
		if prev, ok := seen[s.ID]; ok {
			return errors.Wrapf(ErrInvalidInput, "job[%d]: duplicate id %q (first seen at job[%d])", i, s.ID, prev)
		}
		seen[s.ID] = i
		if math.IsNaN(s.ArrivalTime) || math.IsInf(s.ArrivalTime, 0) || s.ArrivalTime < 0 {
			return errors.Wrapf(ErrInvalidInput, "job %q: arrival time must be a non-negative finite number, got %f", s.ID, s.ArrivalTime)
		}
		if err := validateFinitePositive("burst time", s.BurstTime); err != nil {
			return errors.Wrapf(err, "job %q", s.ID)
		}
	}
	return nil
}

// DefaultJobID names the job at position index when the caller leaves its id empty.
func DefaultJobID(index int) string {
	return fmt.Sprintf("J%d", index+1)
}
