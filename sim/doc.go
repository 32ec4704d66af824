// Package sim provides the discrete-event simulation engine for strfsim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - job.go: Job lifecycle (pending → ready → running → completed) and chunk bookkeeping
//   - chunk.go: decomposition of a job's burst time into fixed-size chunks
//   - simulator.go: the time-stepped event loop (release, readiness, gate, snapshot, dispatch, advance)
//
// # Architecture
//
// All run state (jobs, processors, ready queue, trace) is owned by a single Simulator value.
// A Simulator is single-use: build a fresh one per run. Independent runs share nothing and
// may execute on separate goroutines.
//
// Sub-packages:
//   - sim/trace/: dispatch records, queue snapshots and their summary
//   - sim/workload/: YAML workload specs and seeded random workload generation
//
// # Scheduling Policy
//
// Ready jobs are ordered by LessReady (remaining time, then arrival time, then input order)
// and paired with available processors in enumeration order (CPU1, CPU2, ...). A positive
// SimConfig.Quantum restricts scheduling decisions to instants at least Quantum apart.
package sim
