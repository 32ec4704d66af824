package sim

import (
	"math"

	"github.com/pkg/errors"
)

// DecomposeChunks splits a burst time into chunks of min(unit, remaining), greedily from the
// front. Every chunk is at most unit. A trailing remainder of at most Epsilon gets no chunk of
// its own: the job completes when its last full chunk ends, and the chunks still sum to burst
// within Epsilon.
func DecomposeChunks(burst, unit float64) ([]float64, error) {
	if err := validateFinitePositive("burst time", burst); err != nil {
		return nil, err
	}
	if err := validateFinitePositive("chunk unit", unit); err != nil {
		return nil, err
	}

	chunks := make([]float64, 0, int(math.Ceil(burst/unit)))
	remaining := burst
	for remaining > Epsilon {
		chunk := math.Min(unit, remaining)
		chunks = append(chunks, chunk)
		remaining -= chunk
	}
	if len(chunks) == 0 {
		// burst is positive but below Epsilon
		chunks = append(chunks, burst)
	}
	return chunks, nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return errors.Wrapf(ErrInvalidInput, "%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return errors.Wrapf(ErrInvalidInput, "%s must be positive, got %f", name, val)
	}
	return nil
}
