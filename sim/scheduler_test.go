package sim

import (
	"testing"
)

func jobIDs(jobs []*Job) []string {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOrderReady_ShortestRemainingFirst(t *testing.T) {
	jobs := []*Job{
		{ID: "long", Remaining: 5, Index: 0},
		{ID: "short", Remaining: 1, Index: 1},
		{ID: "mid", Remaining: 3, Index: 2},
	}
	OrderReady(jobs)

	got := jobIDs(jobs)
	want := []string{"short", "mid", "long"}
	if !sliceEqual(got, want) {
		t.Errorf("OrderReady: got %v, want %v", got, want)
	}
}

func TestOrderReady_TieOnRemaining_EarlierArrivalFirst(t *testing.T) {
	jobs := []*Job{
		{ID: "late", Remaining: 2, ArrivalTime: 3, Index: 0},
		{ID: "early", Remaining: 2, ArrivalTime: 1, Index: 1},
	}
	OrderReady(jobs)

	got := jobIDs(jobs)
	want := []string{"early", "late"}
	if !sliceEqual(got, want) {
		t.Errorf("OrderReady arrival tie-break: got %v, want %v", got, want)
	}
}

func TestOrderReady_FullTie_InputOrderPreserved(t *testing.T) {
	jobs := []*Job{
		{ID: "b", Remaining: 2, ArrivalTime: 0, Index: 1},
		{ID: "a", Remaining: 2, ArrivalTime: 0, Index: 0},
		{ID: "c", Remaining: 2, ArrivalTime: 0, Index: 2},
	}
	OrderReady(jobs)

	got := jobIDs(jobs)
	want := []string{"a", "b", "c"}
	if !sliceEqual(got, want) {
		t.Errorf("OrderReady input-order tie-break: got %v, want %v", got, want)
	}
}

func TestLessReady_SubEpsilonDifferences_StillOrderedExactly(t *testing.T) {
	// GIVEN remaining times closer together than Epsilon, with arrivals in the opposite order
	c := &Job{ID: "C", Remaining: 1.0012, ArrivalTime: 0, Index: 0}
	b := &Job{ID: "B", Remaining: 1.0006, ArrivalTime: 0.5, Index: 1}
	a := &Job{ID: "A", Remaining: 1.0, ArrivalTime: 0.9, Index: 2}

	// THEN the comparator is transitive and shortest remaining wins
	if !LessReady(a, b) || !LessReady(b, c) || !LessReady(a, c) {
		t.Error("expected A < B < C by remaining time")
	}
	if LessReady(c, a) || LessReady(b, a) || LessReady(c, b) {
		t.Error("comparator must be asymmetric")
	}

	jobs := []*Job{c, b, a}
	OrderReady(jobs)
	if got, want := jobIDs(jobs), []string{"A", "B", "C"}; !sliceEqual(got, want) {
		t.Errorf("OrderReady: got %v, want %v", got, want)
	}
}

func TestRun_SubEpsilonRemaining_ShortestDispatchedFirst(t *testing.T) {
	// GIVEN three jobs whose bursts differ by less than Epsilon, all ready once C's first chunk ends
	specs := []JobSpec{
		{ID: "C", ArrivalTime: 0, BurstTime: 2.0012},
		{ID: "B", ArrivalTime: 0.5, BurstTime: 1.0006},
		{ID: "A", ArrivalTime: 0.9, BurstTime: 1.0},
	}

	// WHEN simulated on one CPU with unit chunks
	res, err := Run(specs, SimConfig{NumCPUs: 1, ChunkUnit: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN at t=1 the shortest job A runs before B and C
	if len(res.Trace) < 2 {
		t.Fatalf("expected at least 2 dispatches, got %d", len(res.Trace))
	}
	if got := res.Trace[1].JobID; got != "A" {
		t.Errorf("second dispatch: got %s, want A", got)
	}
	if len(res.Snapshots) < 2 {
		t.Fatalf("expected at least 2 snapshots, got %d", len(res.Snapshots))
	}
	front := res.Snapshots[1].Jobs[0].JobID
	if front != "A" {
		t.Errorf("queue front at t=%v: got %s, want A", res.Snapshots[1].Time, front)
	}
}

func TestOrderProcessors_EnumerationOrder(t *testing.T) {
	procs := []*Processor{{ID: "CPU3", Index: 2}, {ID: "CPU1", Index: 0}, {ID: "CPU2", Index: 1}}
	OrderProcessors(procs)

	for i, p := range procs {
		if p.Index != i {
			t.Errorf("position %d: got %s", i, p.ID)
		}
	}
}
