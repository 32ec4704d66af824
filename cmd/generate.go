package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/strfsim/strfsim/sim/workload"
)

var (
	genNumJobs   int
	genSeed      int64
	genCPUs      int
	genChunkUnit float64
	genQuantum   float64
)

// generateCmd writes a random workload spec to stdout
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random workload spec (YAML)",
	Run: func(cmd *cobra.Command, args []string) {
		spec := workload.GenerateSpec(genNumJobs, genSeed, genCPUs, genChunkUnit, genQuantum)
		if err := spec.Validate(); err != nil {
			exitOnError(err)
		}
		data, err := spec.Marshal()
		if err != nil {
			logrus.Fatalf("Failed to encode workload: %v", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			logrus.Fatalf("Failed to write workload: %v", err)
		}
	},
}

func init() {
	generateCmd.Flags().IntVar(&genNumJobs, "num-jobs", 5, "Number of jobs")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Random seed")
	generateCmd.Flags().IntVar(&genCPUs, "cpus", 2, "Number of CPUs")
	generateCmd.Flags().Float64Var(&genChunkUnit, "chunk-unit", 1, "Chunk time unit")
	generateCmd.Flags().Float64Var(&genQuantum, "quantum", 0, "Scheduling quantum (0 = none)")
}
