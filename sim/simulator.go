// sim/simulator.go
package sim

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/strfsim/strfsim/sim/trace"
)

// Simulator is the core object that holds simulation time, job and processor state, and the event loop.
// A Simulator is single-use; allocate a new one per run.
type Simulator struct {
	Clock  float64
	Config SimConfig
	// Jobs in input order; completed jobs stay here with Remaining pinned at 0
	Jobs []*Job
	// Processors in enumeration order (CPU1, CPU2, ...)
	Processors []*Processor
	// ReadyQ is rebuilt at every scheduling opportunity
	ReadyQ *ReadyQueue
	Trace  *trace.SimulationTrace
	// NextSchedulingTime is the earliest instant the quantum gate reopens (unused without a quantum)
	NextSchedulingTime float64
	TickCount          int

	completedJobs int
	ran           bool
}

// NewSimulator validates the input and builds the initial state: every job decomposed into
// chunks, every processor idle at time 0. Jobs with an empty ID are named J1, J2, ... by position.
// Errors wrap ErrInvalidInput.
func NewSimulator(specs []JobSpec, cfg SimConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	named := make([]JobSpec, len(specs))
	for i, s := range specs {
		if s.ID == "" {
			s.ID = DefaultJobID(i)
		}
		named[i] = s
	}
	if err := validateJobSpecs(named); err != nil {
		return nil, err
	}

	jobs := make([]*Job, len(named))
	for i, s := range named {
		job, err := newJob(s, i, cfg.ChunkUnit)
		if err != nil {
			return nil, err
		}
		jobs[i] = job
	}

	return &Simulator{
		Clock:      0,
		Config:     cfg,
		Jobs:       jobs,
		Processors: newProcessors(cfg.NumCPUs),
		ReadyQ:     &ReadyQueue{},
		Trace:      trace.NewSimulationTrace(),
	}, nil
}

// Run builds a Simulator for the given input and runs it to completion.
func Run(specs []JobSpec, cfg SimConfig) (*Result, error) {
	s, err := NewSimulator(specs, cfg)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// Run advances simulated time until every job has completed.
// It returns ErrStalledSimulation if no future event exists while jobs remain incomplete.
func (sim *Simulator) Run() (*Result, error) {
	if sim.ran {
		return nil, errors.New("simulator already ran; allocate a new Simulator for each run")
	}
	sim.ran = true

	logrus.Infof("Starting simulation with %d jobs on %d CPUs, chunkUnit=%v, quantum=%v",
		len(sim.Jobs), len(sim.Processors), sim.Config.ChunkUnit, sim.Config.Quantum)

	for sim.completedJobs < len(sim.Jobs) {
		sim.Step()
		if sim.completedJobs == len(sim.Jobs) {
			break
		}
		ev, ok := sim.nextEvent()
		if !ok {
			return nil, errors.Wrapf(ErrStalledSimulation, "no future event at t=%v with %d of %d jobs incomplete",
				sim.Clock, len(sim.Jobs)-sim.completedJobs, len(sim.Jobs))
		}
		logrus.Debugf("[t=%9.3f] advancing to %v (%s %s)", sim.Clock, ev.Time, ev.Kind, ev.Subject)
		sim.Clock = ev.Time
	}

	logrus.Infof("[t=%9.3f] Simulation ended after %d ticks, %d dispatches",
		sim.Clock, sim.TickCount, len(sim.Trace.Dispatches))
	return sim.result(), nil
}

// Step processes the current instant: release finished processors, then, if the scheduling
// gate is open and both ready jobs and available processors exist, snapshot the ready queue
// and dispatch one chunk per available processor.
func (sim *Simulator) Step() {
	sim.TickCount++
	now := sim.Clock

	for _, p := range sim.Processors {
		if job := p.release(now); job != nil {
			logrus.Debugf("[t=%9.3f] %s released %s", now, p.ID, job.ID)
		}
	}

	if !sim.schedulingAllowed() {
		logrus.Debugf("[t=%9.3f] scheduling gate closed until %v", now, sim.NextSchedulingTime)
		return
	}

	available := sim.availableProcessors()
	sim.fillReadyQueue()
	if len(available) == 0 || sim.ReadyQ.Len() == 0 {
		return
	}

	sim.ReadyQ.Reorder(OrderReady)
	sim.Trace.RecordSnapshot(sim.ReadyQ.Snapshot(now))
	logrus.Debugf("[t=%9.3f] ready queue %v, front %s", now, sim.ReadyQ, sim.ReadyQ.Peek().ID)

	sim.dispatch(available)

	if sim.Config.Quantized() {
		sim.NextSchedulingTime = now + sim.Config.Quantum
	}
}

func (sim *Simulator) schedulingAllowed() bool {
	return !sim.Config.Quantized() || sim.Clock >= sim.NextSchedulingTime
}

func (sim *Simulator) availableProcessors() []*Processor {
	var available []*Processor
	for _, p := range sim.Processors {
		if p.Available(sim.Clock) {
			available = append(available, p)
		}
	}
	OrderProcessors(available)
	return available
}

// fillReadyQueue rebuilds the ready queue in input order; OrderReady's final tie-break
// relies on that order.
func (sim *Simulator) fillReadyQueue() {
	sim.ReadyQ.Reset()
	for _, j := range sim.Jobs {
		if j.State == StatePending && j.ArrivalTime <= sim.Clock {
			j.State = StateReady
		}
		if j.Ready(sim.Clock) {
			sim.ReadyQ.Enqueue(j)
		}
	}
}

// dispatch pairs the front of the ready queue with each available processor in turn.
func (sim *Simulator) dispatch(available []*Processor) {
	now := sim.Clock
	for _, p := range available {
		job := sim.ReadyQ.Dequeue()
		if job == nil {
			break
		}
		if !job.Started {
			job.Started = true
			job.StartTime = now
		}
		chunk := job.popChunk()
		p.assign(job, now+chunk)
		sim.Trace.RecordDispatch(trace.DispatchRecord{
			Start:       now,
			ProcessorID: p.ID,
			JobID:       job.ID,
			Duration:    chunk,
		})
		logrus.Debugf("[t=%9.3f] %s <- %s chunk=%v remaining=%v", now, p.ID, job.ID, chunk, job.Remaining)

		if job.Done() {
			job.Completed = true
			job.CompletionTime = now + chunk
			sim.completedJobs++
			logrus.Infof("Finished job: ID: %s at time: %v", job.ID, job.CompletionTime)
		}
	}
}
