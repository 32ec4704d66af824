package sim

import (
	"testing"
)

func TestPartitionedRNG_SameKeySameStream(t *testing.T) {
	a := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemArrivals)
	b := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemArrivals)
	for i := 0; i < 100; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestPartitionedRNG_SubsystemsIsolated(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(7))
	arrivals := rng.ForSubsystem(SubsystemArrivals)
	bursts := rng.ForSubsystem(SubsystemBursts)
	if arrivals.Int63() == bursts.Int63() {
		t.Error("arrival and burst streams should differ")
	}
}

func TestPartitionedRNG_ForSubsystem_Cached(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(1))
	if rng.ForSubsystem(SubsystemBursts) != rng.ForSubsystem(SubsystemBursts) {
		t.Error("ForSubsystem must return the same instance for the same name")
	}
	if rng.Key() != NewSimulationKey(1) {
		t.Errorf("Key() = %v, want 1", rng.Key())
	}
}
