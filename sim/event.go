package sim

// EventKind identifies what makes a future instant interesting to the event loop.
type EventKind string

const (
	EventProcessorRelease EventKind = "processor-release" // a processor finishes its chunk
	EventArrival          EventKind = "arrival"           // an incomplete job arrives
	EventSchedulingPoint  EventKind = "scheduling-point"  // the quantum gate reopens
)

// Event is the next instant the simulation advances to.
type Event struct {
	Time    float64
	Kind    EventKind
	Subject string // processor or job id; empty for scheduling points
}

// nextEvent returns the earliest event strictly after the current clock.
// Candidates are scanned processors first, then jobs in input order, then the
// scheduling point; the first candidate wins a tie. ok is false when no event exists.
func (sim *Simulator) nextEvent() (ev Event, ok bool) {
	now := sim.Clock
	consider := func(t float64, kind EventKind, subject string) {
		if t <= now {
			return
		}
		if !ok || t < ev.Time {
			ev = Event{Time: t, Kind: kind, Subject: subject}
			ok = true
		}
	}

	for _, p := range sim.Processors {
		consider(p.BusyUntil, EventProcessorRelease, p.ID)
	}
	for _, j := range sim.Jobs {
		if !j.Completed {
			consider(j.ArrivalTime, EventArrival, j.ID)
		}
	}
	if sim.Config.Quantized() {
		consider(sim.NextSchedulingTime, EventSchedulingPoint, "")
	}
	return ev, ok
}
