// Implements the ReadyQueue, which holds the jobs eligible for dispatch at the current instant.
// It is rebuilt at every scheduling opportunity from the jobs that are ready at that time.

package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/strfsim/strfsim/sim/trace"
)

// ReadyQueue represents the jobs competing for processors at one scheduling instant.
type ReadyQueue struct {
	queue []*Job
}

// Enqueue adds a job to the back of the queue.
func (rq *ReadyQueue) Enqueue(j *Job) {
	rq.queue = append(rq.queue, j)
}

// Reset empties the queue, keeping its storage.
func (rq *ReadyQueue) Reset() {
	rq.queue = rq.queue[:0]
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.queue {
		sb.WriteString(fmt.Sprintf("%s=%.1f", val.ID, val.Remaining))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of jobs in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the job at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Job {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Job {
	return rq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// fn MUST NOT change the slice length.
func (rq *ReadyQueue) Reorder(fn func([]*Job)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}

// Dequeue removes and returns the job at the front of the queue, or nil when empty.
func (rq *ReadyQueue) Dequeue() *Job {
	if len(rq.queue) == 0 {
		return nil
	}
	j := rq.queue[0]
	rq.queue = rq.queue[1:]
	return j
}

// Snapshot captures the queue in its current order with remaining times rounded to one decimal.
func (rq *ReadyQueue) Snapshot(now float64) trace.QueueSnapshot {
	items := rq.Items()
	entries := make([]trace.QueuedJob, len(items))
	for i, j := range items {
		entries[i] = trace.QueuedJob{JobID: j.ID, Remaining: math.Round(j.Remaining*10) / 10}
	}
	return trace.QueueSnapshot{Time: now, Jobs: entries}
}
