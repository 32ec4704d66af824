package trace

// SimulationTrace collects dispatch records and queue snapshots during a run.
// Both slices are append-only and ordered by recording order.
type SimulationTrace struct {
	Dispatches []DispatchRecord
	Snapshots  []QueueSnapshot
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Dispatches: make([]DispatchRecord, 0),
		Snapshots:  make([]QueueSnapshot, 0),
	}
}

// RecordDispatch appends a dispatch record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordSnapshot appends a queue snapshot. Empty snapshots are dropped.
func (st *SimulationTrace) RecordSnapshot(snapshot QueueSnapshot) {
	if len(snapshot.Jobs) == 0 {
		return
	}
	st.Snapshots = append(st.Snapshots, snapshot)
}
