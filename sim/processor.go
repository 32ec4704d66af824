package sim

import "fmt"

// Processor is a simulated CPU. It is either idle (no job, BusyUntil <= now) or busy
// running one chunk of Job until BusyUntil.
type Processor struct {
	ID        string
	Index     int // enumeration order; lower indices are serviced first
	BusyUntil float64
	Job       *Job
}

func newProcessors(n int) []*Processor {
	procs := make([]*Processor, n)
	for i := range procs {
		procs[i] = &Processor{ID: fmt.Sprintf("CPU%d", i+1), Index: i}
	}
	return procs
}

// Available reports whether the processor can take a chunk at time now.
func (p *Processor) Available(now float64) bool {
	return p.BusyUntil <= now && p.Job == nil
}

// assign hands one chunk of job to the processor until busyUntil.
func (p *Processor) assign(job *Job, busyUntil float64) {
	if p.Job != nil {
		panic(fmt.Sprintf("assign: processor %s already holds job %s", p.ID, p.Job.ID))
	}
	p.Job = job
	p.BusyUntil = busyUntil
	job.AssignedProcessor = p.ID
	job.State = StateRunning
}

// release frees the processor if its chunk has finished by now and returns the released job.
func (p *Processor) release(now float64) *Job {
	if p.Job == nil || p.BusyUntil > now {
		return nil
	}
	job := p.Job
	p.Job = nil
	job.AssignedProcessor = ""
	if job.Completed {
		job.State = StateCompleted
	} else {
		job.State = StateReady
	}
	return job
}
