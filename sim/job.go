// Defines the Job struct that models an individual unit of work in the simulation.
// Tracks arrival, remaining chunks, and the timestamps needed for turnaround reporting.

package sim

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the tolerance used for all floating-point time comparisons.
const Epsilon = 0.001

// JobState represents the lifecycle state of a job.
type JobState string

const (
	StatePending   JobState = "pending" // not yet arrived
	StateReady     JobState = "ready"
	StateRunning   JobState = "running"
	StateCompleted JobState = "completed"
)

// JobSpec is the caller-facing description of a job.
type JobSpec struct {
	ID          string  `json:"id" yaml:"id"`
	ArrivalTime float64 `json:"arrival" yaml:"arrival"`
	BurstTime   float64 `json:"burst" yaml:"burst"`
}

// Job is the simulation-owned record for one JobSpec.
type Job struct {
	ID          string
	ArrivalTime float64
	BurstTime   float64
	Index       int // position in the input list, final tie-break for ordering

	Chunks    []float64 // remaining chunks, consumed front to back
	Remaining float64   // always the sum of Chunks (within Epsilon)
	State     JobState

	Started        bool
	StartTime      float64 // valid once Started
	Completed      bool
	CompletionTime float64 // valid once Completed

	AssignedProcessor string // empty when not held by a processor
}

func newJob(spec JobSpec, index int, chunkUnit float64) (*Job, error) {
	chunks, err := DecomposeChunks(spec.BurstTime, chunkUnit)
	if err != nil {
		return nil, errors.Wrapf(err, "job %q", spec.ID)
	}
	return &Job{
		ID:          spec.ID,
		ArrivalTime: spec.ArrivalTime,
		BurstTime:   spec.BurstTime,
		Index:       index,
		Chunks:      chunks,
		Remaining:   spec.BurstTime,
		State:       StatePending,
	}, nil
}

// Ready reports whether the job may be dispatched at time now.
func (j *Job) Ready(now float64) bool {
	return j.ArrivalTime <= now && !j.Completed && j.AssignedProcessor == ""
}

// popChunk removes the next chunk and charges it against the remaining time.
// The remaining time is pinned to exactly zero once it falls within Epsilon.
func (j *Job) popChunk() float64 {
	if len(j.Chunks) == 0 {
		panic(fmt.Sprintf("popChunk: job %s has no chunks left (remaining=%v)", j.ID, j.Remaining))
	}
	chunk := j.Chunks[0]
	j.Chunks = j.Chunks[1:]
	j.Remaining -= chunk
	if math.Abs(j.Remaining) < Epsilon {
		j.Remaining = 0
	}
	return chunk
}

// Done reports whether all of the job's work has been dispatched.
func (j *Job) Done() bool {
	return j.Remaining < Epsilon
}

// TurnaroundTime is completion minus arrival; zero until the job completes.
func (j *Job) TurnaroundTime() float64 {
	if !j.Completed {
		return 0
	}
	return j.CompletionTime - j.ArrivalTime
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %s, State: %s, Remaining: %.3f, ArrivalTime: %.3f)", j.ID, j.State, j.Remaining, j.ArrivalTime)
}
