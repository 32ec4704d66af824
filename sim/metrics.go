// Builds the per-job and aggregate results reported at the end of a simulation.

package sim

import (
	"gonum.org/v1/gonum/stat"

	"github.com/strfsim/strfsim/sim/trace"
)

// JobResult is the final record of one job.
type JobResult struct {
	ID             string  `json:"id"`
	ArrivalTime    float64 `json:"arrival_time"`
	BurstTime      float64 `json:"burst_time"`
	StartTime      float64 `json:"start_time"`
	CompletionTime float64 `json:"completion_time"`
	TurnaroundTime float64 `json:"turnaround_time"` // completion - arrival
	WaitingTime    float64 `json:"waiting_time"`    // turnaround - burst
}

// Result is everything a presentation layer needs from a run.
type Result struct {
	Jobs           []JobResult           `json:"jobs"` // input order
	MeanTurnaround float64               `json:"mean_turnaround"`
	MeanWaiting    float64               `json:"mean_waiting"`
	Trace          []trace.DispatchRecord `json:"trace"`
	Snapshots      []trace.QueueSnapshot  `json:"queue_snapshots"`
	Summary        *trace.TraceSummary    `json:"summary"`
}

func (sim *Simulator) result() *Result {
	res := &Result{
		Jobs:      make([]JobResult, len(sim.Jobs)),
		Trace:     sim.Trace.Dispatches,
		Snapshots: sim.Trace.Snapshots,
	}
	turnarounds := make([]float64, len(sim.Jobs))
	waits := make([]float64, len(sim.Jobs))
	for i, j := range sim.Jobs {
		tat := j.TurnaroundTime()
		res.Jobs[i] = JobResult{
			ID:             j.ID,
			ArrivalTime:    j.ArrivalTime,
			BurstTime:      j.BurstTime,
			StartTime:      j.StartTime,
			CompletionTime: j.CompletionTime,
			TurnaroundTime: tat,
			WaitingTime:    tat - j.BurstTime,
		}
		turnarounds[i] = tat
		waits[i] = tat - j.BurstTime
	}
	res.MeanTurnaround = stat.Mean(turnarounds, nil)
	res.MeanWaiting = stat.Mean(waits, nil)

	ids := make([]string, len(sim.Processors))
	for i, p := range sim.Processors {
		ids[i] = p.ID
	}
	res.Summary = trace.Summarize(sim.Trace, ids)
	return res
}

// JobResultByID returns the result for id, or false if no such job exists.
func (r *Result) JobResultByID(id string) (JobResult, bool) {
	for _, j := range r.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return JobResult{}, false
}
