package sim

import "sort"

// LessReady is the STRF comparator: shortest remaining time first, earlier arrival on a tie,
// and input order as the final tie-break. Comparisons are exact so the ordering stays a
// strict weak order.
func LessReady(a, b *Job) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}

// OrderReady sorts jobs in-place by LessReady.
func OrderReady(jobs []*Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return LessReady(jobs[i], jobs[j])
	})
}

// LessProcessor fixes the order in which available processors are serviced within a tick.
func LessProcessor(a, b *Processor) bool {
	return a.Index < b.Index
}

// OrderProcessors sorts processors in-place by LessProcessor.
func OrderProcessors(procs []*Processor) {
	sort.SliceStable(procs, func(i, j int) bool {
		return LessProcessor(procs[i], procs[j])
	})
}
