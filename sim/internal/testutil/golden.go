// Package testutil provides shared test infrastructure for the strfsim engine.
// It holds the golden scenario types and float assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/strfsim/strfsim/sim/trace"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-verified scenario: an input and the exact expected run.
type GoldenTestCase struct {
	Name      string      `json:"name"`
	CPUs      int         `json:"cpus"`
	ChunkUnit float64     `json:"chunk_unit"`
	Quantum   float64     `json:"quantum"`
	Jobs      []GoldenJob `json:"jobs"`
	Expected  GoldenRun   `json:"expected"`
}

// GoldenJob is one input job.
type GoldenJob struct {
	ID      string  `json:"id"`
	Arrival float64 `json:"arrival"`
	Burst   float64 `json:"burst"`
}

// GoldenRun holds the expected output of a scenario.
type GoldenRun struct {
	Jobs           []GoldenJobResult      `json:"jobs"`
	MeanTurnaround float64                `json:"mean_turnaround"`
	Trace          []trace.DispatchRecord `json:"trace"`
	Snapshots      []trace.QueueSnapshot  `json:"queue_snapshots"`
}

// GoldenJobResult is the expected per-job outcome.
type GoldenJobResult struct {
	ID         string  `json:"id"`
	Start      float64 `json:"start"`
	Completion float64 `json:"completion"`
	Turnaround float64 `json:"turnaround"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertWithinEpsilon fails the test when want and got differ by more than eps.
func AssertWithinEpsilon(t *testing.T, name string, want, got, eps float64) {
	t.Helper()
	if diff := math.Abs(want - got); diff > eps {
		t.Errorf("%s: got %v, want %v (diff=%v, eps=%v)", name, got, want, diff, eps)
	}
}
