// Package trace holds the execution trace and ready-queue history of a simulation run.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures one chunk of a job occupying a processor.
type DispatchRecord struct {
	Start       float64 `json:"start"`
	ProcessorID string  `json:"processor_id"`
	JobID       string  `json:"job_id"`
	Duration    float64 `json:"duration"`
}

// End is the instant the processor finishes the chunk.
func (r DispatchRecord) End() float64 {
	return r.Start + r.Duration
}

// QueuedJob is one ready job as seen by a queue snapshot.
type QueuedJob struct {
	JobID     string  `json:"job_id"`
	Remaining float64 `json:"remaining"` // rounded to one decimal
}

// QueueSnapshot captures the ready queue, in scheduling order, at a scheduling instant.
type QueueSnapshot struct {
	Time float64     `json:"time"`
	Jobs []QueuedJob `json:"jobs"`
}
