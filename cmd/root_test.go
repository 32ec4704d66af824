package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strfsim/strfsim/sim"
)

// newTestRunCmd returns a command carrying fresh run flags; registering them
// resets the package-level flag variables to their defaults.
func newTestRunCmd(t *testing.T, args map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "run"}
	registerRunFlags(cmd)
	for name, value := range args {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestResolveInput_InlineJobs(t *testing.T) {
	// GIVEN inline jobs and explicit scheduling flags
	cmd := newTestRunCmd(t, map[string]string{"jobs": "0:3,1:2", "cpus": "2", "quantum": "1"})

	// WHEN input is resolved
	specs, cfg, err := resolveInput(cmd)

	// THEN jobs get default ids and the flags form the config
	require.NoError(t, err)
	assert.Equal(t, []sim.JobSpec{{ID: "J1", BurstTime: 3}, {ID: "J2", ArrivalTime: 1, BurstTime: 2}}, specs)
	assert.Equal(t, sim.SimConfig{NumCPUs: 2, ChunkUnit: 1, Quantum: 1}, cfg)
}

func TestResolveInput_RequiresExactlyOneSource(t *testing.T) {
	for name, args := range map[string]map[string]string{
		"none": {},
		"two":  {"jobs": "0:1", "random-jobs": "3"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := resolveInput(newTestRunCmd(t, args))
			assert.True(t, errors.Is(err, sim.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestResolveInput_RandomJobs(t *testing.T) {
	specs, _, err := resolveInput(newTestRunCmd(t, map[string]string{"random-jobs": "4", "seed": "9"}))
	require.NoError(t, err)
	assert.Len(t, specs, 4)
}

func TestResolveInput_WorkloadFile_FlagsOverride(t *testing.T) {
	// GIVEN a workload file with 1 CPU and a flag asking for 3
	path := filepath.Join(t.TempDir(), "w.yaml")
	data := "cpus: 1\nchunk_unit: 0.5\njobs:\n  - {id: A, arrival: 0, burst: 2}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	cmd := newTestRunCmd(t, map[string]string{"workload": path, "cpus": "3"})

	// WHEN input is resolved
	specs, cfg, err := resolveInput(cmd)

	// THEN the flag wins and unset flags keep the file's values
	require.NoError(t, err)
	assert.Equal(t, []sim.JobSpec{{ID: "A", BurstTime: 2}}, specs)
	assert.Equal(t, sim.SimConfig{NumCPUs: 3, ChunkUnit: 0.5}, cfg)
}

func TestResolveInput_WorkloadFile_InvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cpus: 1\nchunk_unit: 1\njobs:\n  - {id: A, arrival: 0, burst: 2}\n"), 0644))

	_, _, err := resolveInput(newTestRunCmd(t, map[string]string{"workload": path, "cpus": "0"}))
	assert.True(t, errors.Is(err, sim.ErrInvalidInput), "got %v", err)
}

func runInline(t *testing.T) *sim.Result {
	t.Helper()
	res, err := sim.Run([]sim.JobSpec{{ID: "J1", BurstTime: 3}, {ID: "J2", ArrivalTime: 1, BurstTime: 2}},
		sim.SimConfig{NumCPUs: 1, ChunkUnit: 1})
	require.NoError(t, err)
	return res
}

func TestWriteResult_Table(t *testing.T) {
	// GIVEN J1 finishing at 3 and J2 at 5
	res := runInline(t)

	// WHEN rendered as a table with trace and queue
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, res, "table", true, true))

	// THEN the average turnaround and the listings are printed
	out := buf.String()
	assert.Contains(t, out, "Average Turnaround Time: 3.50")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "Dispatch trace")
	assert.Contains(t, out, "CPU1")
	assert.Contains(t, out, "t=1.0    J1 = 2, J2 = 2")
}

func TestWriteResult_JSON(t *testing.T) {
	res := runInline(t)

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, res, "json", false, false))

	var decoded sim.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3.5, decoded.MeanTurnaround)
	assert.Len(t, decoded.Trace, 5)
}

func TestWriteResult_UnknownFormat(t *testing.T) {
	err := writeResult(&bytes.Buffer{}, runInline(t), "xml", false, false)
	assert.Error(t, err)
}
