package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Praveenmail2him/Hyperfoil/internal/config"
	"github.com/Praveenmail2him/Hyperfoil/internal/httpclient"
	"github.com/Praveenmail2him/Hyperfoil/internal/loop"
	"github.com/Praveenmail2him/Hyperfoil/internal/metrics"
	"github.com/Praveenmail2him/Hyperfoil/internal/output"
	"github.com/Praveenmail2him/Hyperfoil/internal/phase"
	"github.com/Praveenmail2him/Hyperfoil/internal/pool"
	"github.com/Praveenmail2him/Hyperfoil/internal/scheduler"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark definition file",
	Long: `Load a benchmark definition (a name, and a set of phases each pairing a
scenario with an arrival model), validate it, and drive it to completion on
a single executor goroutine, printing phase status transitions and a final
summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		definitionFile, _ := cmd.Flags().GetString("file")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if definitionFile == "" {
			fmt.Println("Error: definition file is required")
			cmd.Help()
			return
		}

		if err := runBenchmark(definitionFile, noColor); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().StringP("file", "f", "", "Benchmark definition file (required)")
	runCmd.Flags().Bool("no-color", false, "Disable colored console output")
}

// reportingStats forwards every session/phase event to the metrics
// collector, and additionally prints phase status transitions to the
// console as they happen rather than only in the final report.
type reportingStats struct {
	*metrics.Collector
	console *output.Console
}

func (r *reportingStats) PhaseStatusChanged(phase, status string) {
	r.Collector.PhaseStatusChanged(phase, status)
	r.console.PhaseStatusChanged(phase, status)
}

// runBenchmark loads, validates, builds, and executes a benchmark
// definition end to end, reporting through a Console as it goes.
func runBenchmark(definitionFile string, noColor bool) error {
	raw, err := os.ReadFile(definitionFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", definitionFile, err)
	}
	if err := config.Validate(raw); err != nil {
		return fmt.Errorf("invalid definition: %w", err)
	}

	doc, err := config.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing definition: %w", err)
	}

	exec := loop.New()

	clientPool := httpclient.NewPool(exec)
	bench, err := config.Build(doc, clientPool)
	if err != nil {
		return fmt.Errorf("building benchmark: %w", err)
	}

	collector := metrics.NewCollector()
	console := output.NewConsole(os.Stdout)
	if noColor {
		console = output.NewPlainConsole(os.Stdout)
	}

	stats := &reportingStats{Collector: collector, console: console}

	sched := scheduler.New(exec)
	threadData := session.NewThreadData()

	// One pool, sized by summing every phase's reservation, shared across
	// every phase on this executor (spec.md §4.1 — capacity is "chosen at
	// reservation time by summing, over phases co-located on that
	// executor"). This is what lets two ConstantPerSec/RampPerSec phases
	// sharing an executor saturate each other's acquisitions.
	instances := make([]*phase.Instance, 0, len(bench.Phases))
	total := 0
	for _, def := range bench.Phases {
		inst := phase.NewInstance(def, nil, exec, stats)
		total += inst.ReserveCount()
		instances = append(instances, inst)
	}
	sessPool := pool.New(total, threadData, bench.VarSchema)
	for _, inst := range instances {
		inst.Pool = sessPool
		sched.Add(inst)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stopExec := make(chan struct{})
	execDone := make(chan struct{})
	go func() {
		exec.Run(stopExec)
		close(execDone)
	}()

	runErr := sched.Run(ctx)

	close(stopExec)
	<-execDone

	fmt.Fprintf(os.Stdout, "\nbenchmark %q finished\n", bench.Name)
	console.Report(collector.Snapshot())

	return runErr
}
