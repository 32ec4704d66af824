package trace

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// timeKeyScale buckets dispatch start times so instants equal within 1e-6 group together.
const timeKeyScale = 1e6

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches int                `json:"total_dispatches"`
	Makespan        float64            `json:"makespan"` // latest chunk end
	BusyTime        map[string]float64 `json:"busy_time"`   // processor ID → total dispatched time
	Utilization     map[string]float64 `json:"utilization"` // processor ID → BusyTime / Makespan
	// MaxDispatchesPerInstant is the largest number of chunks started at one instant.
	MaxDispatchesPerInstant int `json:"max_dispatches_per_instant"`
	MaxQueueDepth           int `json:"max_queue_depth"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// processorIDs lists every processor so idle ones still report zero busy time.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace, processorIDs []string) *TraceSummary {
	summary := &TraceSummary{
		BusyTime:    make(map[string]float64, len(processorIDs)),
		Utilization: make(map[string]float64, len(processorIDs)),
	}
	for _, id := range processorIDs {
		summary.BusyTime[id] = 0
		summary.Utilization[id] = 0
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	durations := make(map[string][]float64, len(processorIDs))
	perInstant := make(map[int64]int)
	for _, d := range st.Dispatches {
		durations[d.ProcessorID] = append(durations[d.ProcessorID], d.Duration)
		summary.Makespan = math.Max(summary.Makespan, d.End())
		key := int64(math.Round(d.Start * timeKeyScale))
		perInstant[key]++
		if perInstant[key] > summary.MaxDispatchesPerInstant {
			summary.MaxDispatchesPerInstant = perInstant[key]
		}
	}
	for id, ds := range durations {
		summary.BusyTime[id] = floats.Sum(ds)
		if summary.Makespan > 0 {
			summary.Utilization[id] = summary.BusyTime[id] / summary.Makespan
		}
	}

	for _, s := range st.Snapshots {
		summary.MaxQueueDepth = max(summary.MaxQueueDepth, len(s.Jobs))
	}

	return summary
}
