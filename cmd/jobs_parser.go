package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/strfsim/strfsim/sim"
)

// ParseJobs parses "arrival:burst" pairs separated by commas into jobs named J1..Jn.
// An optional "ID=" prefix names a job explicitly, e.g. "A=0:3,B=1:2".
func ParseJobs(s string) ([]sim.JobSpec, error) {
	var jobs []sim.JobSpec
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id := sim.DefaultJobID(len(jobs))
		if name, rest, ok := strings.Cut(field, "="); ok {
			id, field = strings.TrimSpace(name), rest
		}
		arrivalStr, burstStr, ok := strings.Cut(field, ":")
		if !ok {
			return nil, errors.Wrapf(sim.ErrInvalidInput, "job %d: expected arrival:burst, got %q", i+1, field)
		}
		arrival, err := strconv.ParseFloat(strings.TrimSpace(arrivalStr), 64)
		if err != nil {
			return nil, errors.Wrapf(sim.ErrInvalidInput, "job %d: bad arrival %q", i+1, arrivalStr)
		}
		burst, err := strconv.ParseFloat(strings.TrimSpace(burstStr), 64)
		if err != nil {
			return nil, errors.Wrapf(sim.ErrInvalidInput, "job %d: bad burst %q", i+1, burstStr)
		}
		jobs = append(jobs, sim.JobSpec{ID: id, ArrivalTime: arrival, BurstTime: burst})
	}
	if len(jobs) == 0 {
		return nil, errors.Wrap(sim.ErrInvalidInput, "no jobs given")
	}
	return jobs, nil
}
