package workload

import (
	"bytes"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/strfsim/strfsim/sim"
)

// CurrentVersion is the workload spec version written by this package.
const CurrentVersion = "1"

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version   string        `yaml:"version"`
	CPUs      int           `yaml:"cpus"`
	ChunkUnit float64       `yaml:"chunk_unit"`
	Quantum   float64       `yaml:"quantum,omitempty"` // 0 = schedule on every event
	Jobs      []sim.JobSpec `yaml:"jobs,omitempty"`
	Random    *RandomSpec   `yaml:"random,omitempty"`
}

// RandomSpec asks for generated jobs instead of an explicit list.
type RandomSpec struct {
	Seed    int64 `yaml:"seed"`
	NumJobs int   `yaml:"num_jobs"`
}

var validVersions = map[string]bool{"": true, CurrentVersion: true}

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading workload spec")
	}
	return ParseWorkloadSpec(data)
}

// ParseWorkloadSpec parses YAML workload bytes with strict field checking.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, errors.Wrap(err, "parsing workload spec")
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	}
	return &spec, nil
}

// Validate checks the spec-level fields. Per-job values are validated again by sim.NewSimulator.
func (s *WorkloadSpec) Validate() error {
	if !validVersions[s.Version] {
		return errors.Wrapf(sim.ErrInvalidInput, "unknown workload version %q; valid: %s", s.Version, CurrentVersion)
	}
	if err := s.SimConfig().Validate(); err != nil {
		return err
	}
	if len(s.Jobs) > 0 && s.Random != nil {
		return errors.Wrap(sim.ErrInvalidInput, "jobs and random are mutually exclusive")
	}
	if len(s.Jobs) == 0 && s.Random == nil {
		return errors.Wrap(sim.ErrInvalidInput, "at least one job or a random section is required")
	}
	if s.Random != nil && s.Random.NumJobs <= 0 {
		return errors.Wrapf(sim.ErrInvalidInput, "random.num_jobs must be positive, got %d", s.Random.NumJobs)
	}
	for i, j := range s.Jobs {
		if !isFinite(j.ArrivalTime) || j.ArrivalTime < 0 {
			return errors.Wrapf(sim.ErrInvalidInput, "jobs[%d].arrival must be a non-negative finite number, got %f", i, j.ArrivalTime)
		}
		if !isFinite(j.BurstTime) || j.BurstTime <= 0 {
			return errors.Wrapf(sim.ErrInvalidInput, "jobs[%d].burst must be a positive finite number, got %f", i, j.BurstTime)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SimConfig returns the scheduling parameters carried by the spec.
func (s *WorkloadSpec) SimConfig() sim.SimConfig {
	return sim.SimConfig{NumCPUs: s.CPUs, ChunkUnit: s.ChunkUnit, Quantum: s.Quantum}
}

// JobSpecs returns the explicit jobs, or generates them from the random section.
func (s *WorkloadSpec) JobSpecs() []sim.JobSpec {
	if s.Random != nil {
		return GenerateJobs(s.Random.NumJobs, s.Random.Seed)
	}
	jobs := make([]sim.JobSpec, len(s.Jobs))
	copy(jobs, s.Jobs)
	return jobs
}

// Marshal renders the spec as YAML.
func (s *WorkloadSpec) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, "encoding workload spec")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding workload spec")
	}
	return buf.Bytes(), nil
}
