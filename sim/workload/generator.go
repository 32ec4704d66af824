package workload

import (
	"github.com/strfsim/strfsim/sim"
)

// BurstChoices are the burst times the generator draws from.
var BurstChoices = []float64{1, 1.5, 2, 2.5, 3, 3.5, 4.5, 5}

const (
	// MinArrival and MaxArrival bound generated arrival times (inclusive, whole units).
	MinArrival = 1
	MaxArrival = 10
)

// GenerateJobs creates n jobs named J1..Jn with arrivals drawn uniformly from
// [MinArrival, MaxArrival] and bursts drawn from BurstChoices.
// Deterministic given the same n and seed.
func GenerateJobs(n int, seed int64) []sim.JobSpec {
	if n <= 0 {
		return nil
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	arrivals := rng.ForSubsystem(sim.SubsystemArrivals)
	bursts := rng.ForSubsystem(sim.SubsystemBursts)

	jobs := make([]sim.JobSpec, n)
	for i := range jobs {
		jobs[i] = sim.JobSpec{
			ID:          sim.DefaultJobID(i),
			ArrivalTime: float64(MinArrival + arrivals.Intn(MaxArrival-MinArrival+1)),
			BurstTime:   BurstChoices[bursts.Intn(len(BurstChoices))],
		}
	}
	return jobs
}

// GenerateSpec builds a complete workload spec holding n generated jobs.
func GenerateSpec(n int, seed int64, cpus int, chunkUnit, quantum float64) *WorkloadSpec {
	return &WorkloadSpec{
		Version:   CurrentVersion,
		CPUs:      cpus,
		ChunkUnit: chunkUnit,
		Quantum:   quantum,
		Jobs:      GenerateJobs(n, seed),
	}
}
