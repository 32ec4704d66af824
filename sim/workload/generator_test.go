package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strfsim/strfsim/sim"
)

func TestGenerateJobs_SameSeed_SameJobs(t *testing.T) {
	assert.Equal(t, GenerateJobs(20, 42), GenerateJobs(20, 42))
}

func TestGenerateJobs_DifferentSeeds_Differ(t *testing.T) {
	assert.NotEqual(t, GenerateJobs(20, 1), GenerateJobs(20, 2))
}

func TestGenerateJobs_ValuesWithinRange(t *testing.T) {
	allowed := make(map[float64]bool, len(BurstChoices))
	for _, b := range BurstChoices {
		allowed[b] = true
	}

	jobs := GenerateJobs(200, 7)
	require.Len(t, jobs, 200)
	for i, j := range jobs {
		assert.Equal(t, sim.DefaultJobID(i), j.ID)
		assert.GreaterOrEqual(t, j.ArrivalTime, float64(MinArrival))
		assert.LessOrEqual(t, j.ArrivalTime, float64(MaxArrival))
		assert.True(t, allowed[j.BurstTime], "burst %v not in choices", j.BurstTime)
	}
}

func TestGenerateJobs_NonPositiveCount_Empty(t *testing.T) {
	assert.Empty(t, GenerateJobs(0, 1))
	assert.Empty(t, GenerateJobs(-3, 1))
}

func TestGenerateSpec_Runs(t *testing.T) {
	// GIVEN a generated workload
	spec := GenerateSpec(8, 5, 2, 1, 0)
	require.NoError(t, spec.Validate())

	// WHEN simulated
	res, err := sim.Run(spec.JobSpecs(), spec.SimConfig())

	// THEN every job completes
	require.NoError(t, err)
	for _, j := range res.Jobs {
		assert.Greater(t, j.CompletionTime, j.ArrivalTime)
	}
}
