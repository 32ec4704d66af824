package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/strfsim/strfsim/sim"
	"github.com/strfsim/strfsim/sim/workload"
)

var (
	// CLI flags for the run command
	logLevel     string  // Log verbosity level
	workloadPath string  // YAML workload spec
	jobsFlag     string  // Inline jobs "arrival:burst,..."
	randomJobs   int     // Number of generated jobs
	seed         int64   // Seed for generated jobs
	numCPUs      int     // Number of simulated processors
	chunkUnit    float64 // Maximum chunk size
	quantum      float64 // Minimum interval between scheduling decisions (0 = none)
	outputFormat string  // table or json
	showTrace    bool    // Print the dispatch trace
	showQueue    bool    // Print the queue snapshots
)

// Exit codes distinguish user input problems from internal defects.
const (
	exitInvalidInput  = 1
	exitInternalError = 2
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "strfsim",
	Short: "Discrete-event simulator for chunked multi-CPU STRF scheduling",
}

// runCmd executes the simulation using parameters from CLI flags and an optional workload file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the STRF simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)

		specs, cfg, err := resolveInput(cmd)
		if err != nil {
			exitOnError(err)
		}

		res, err := sim.Run(specs, cfg)
		if err != nil {
			exitOnError(err)
		}

		if err := writeResult(os.Stdout, res, outputFormat, showTrace, showQueue); err != nil {
			logrus.Fatalf("Failed to write result: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

func setupLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(lvl)
}

// exitOnError reports err and terminates with an exit code matching its class.
func exitOnError(err error) {
	switch {
	case errors.Is(err, sim.ErrStalledSimulation):
		logrus.Errorf("internal error: %v", err)
		os.Exit(exitInternalError)
	default:
		logrus.Errorf("invalid input: %v", err)
		os.Exit(exitInvalidInput)
	}
}

// resolveInput merges the workload file (if any) with explicitly set flags.
// Exactly one job source is accepted: --workload, --jobs or --random-jobs.
func resolveInput(cmd *cobra.Command) ([]sim.JobSpec, sim.SimConfig, error) {
	flags := cmd.Flags()
	sources := 0
	for _, name := range []string{"workload", "jobs", "random-jobs"} {
		if flags.Changed(name) {
			sources++
		}
	}
	if sources != 1 {
		return nil, sim.SimConfig{}, errors.Wrap(sim.ErrInvalidInput, "exactly one of --workload, --jobs or --random-jobs is required")
	}

	cfg := sim.SimConfig{NumCPUs: numCPUs, ChunkUnit: chunkUnit, Quantum: quantum}
	var specs []sim.JobSpec
	switch {
	case flags.Changed("workload"):
		spec, err := workload.LoadWorkloadSpec(workloadPath)
		if err != nil {
			return nil, sim.SimConfig{}, errors.Wrap(sim.ErrInvalidInput, err.Error())
		}
		applyOverrides(cmd, spec)
		if err := spec.Validate(); err != nil {
			return nil, sim.SimConfig{}, err
		}
		specs = spec.JobSpecs()
		cfg = spec.SimConfig()
	case flags.Changed("jobs"):
		parsed, err := ParseJobs(jobsFlag)
		if err != nil {
			return nil, sim.SimConfig{}, err
		}
		specs = parsed
	default:
		specs = workload.GenerateJobs(randomJobs, seed)
		if len(specs) == 0 {
			return nil, sim.SimConfig{}, errors.Wrapf(sim.ErrInvalidInput, "--random-jobs must be positive, got %d", randomJobs)
		}
	}
	return specs, cfg, nil
}

// applyOverrides copies the scheduling flags the user set explicitly over the spec's values.
func applyOverrides(cmd *cobra.Command, spec *workload.WorkloadSpec) {
	flags := cmd.Flags()
	if flags.Changed("cpus") {
		spec.CPUs = numCPUs
	}
	if flags.Changed("chunk-unit") {
		spec.ChunkUnit = chunkUnit
	}
	if flags.Changed("quantum") {
		spec.Quantum = quantum
	}
}

// writeResult renders res in the requested format.
func writeResult(w io.Writer, res *sim.Result, format string, withTrace, withQueue bool) error {
	switch format {
	case "json":
		return renderJSON(w, res)
	case "table", "":
		renderTable(w, res)
		if withTrace {
			renderTrace(w, res)
		}
		if withQueue {
			renderQueue(w, res)
		}
		return nil
	default:
		return errors.Errorf("unknown output format %q; valid: table, json", format)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags binds the run flags of cmd to the package-level flag variables.
func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Job sources
	cmd.Flags().StringVar(&workloadPath, "workload", "", "Path to a YAML workload spec")
	cmd.Flags().StringVar(&jobsFlag, "jobs", "", "Inline jobs as comma-separated arrival:burst pairs (e.g. 0:3,1:2)")
	cmd.Flags().IntVar(&randomJobs, "random-jobs", 0, "Generate this many random jobs")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random job generation")

	// Scheduling parameters (override the workload file when set)
	cmd.Flags().IntVar(&numCPUs, "cpus", 1, "Number of CPUs")
	cmd.Flags().Float64Var(&chunkUnit, "chunk-unit", 1, "Chunk time unit")
	cmd.Flags().Float64Var(&quantum, "quantum", 0, "Minimum time between scheduling decisions (0 = reschedule on every event)")

	// Output
	cmd.Flags().StringVar(&outputFormat, "output", "table", "Output format (table, json)")
	cmd.Flags().BoolVar(&showTrace, "show-trace", false, "Print the dispatch trace")
	cmd.Flags().BoolVar(&showQueue, "show-queue", false, "Print the ready-queue snapshots")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
