package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Praveenmail2him/Hyperfoil/internal/metrics"
)

// Console is the benchmark run's console reporter: it prints phase status
// transitions as they happen and a final summary once the run completes.
// Grounded on the teacher's terminal-detection + color-scheme pattern
// (internal/output/colors.go, internal/performance/v2/output/console.go),
// trimmed down from that file's live-updating progress display to the
// simpler append-only log this core's narrower scope calls for.
type Console struct {
	w       io.Writer
	scheme  *ColorScheme
	noColor bool
}

// NewConsole creates a Console writing to w. Colors are enabled only when w
// is a real terminal, detected via mattn/go-isatty the same way the
// teacher's Unix terminal check does.
func NewConsole(w io.Writer) *Console {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Console{w: w, scheme: scheme, noColor: noColor}
}

// NewPlainConsole creates a Console writing to w with colors forced off,
// regardless of whether w is a terminal.
func NewPlainConsole(w io.Writer) *Console {
	return &Console{w: w, scheme: NoColorScheme(), noColor: true}
}

// PhaseStatusChanged implements internal/phase.StatsCollector's reporting
// surface by way of embedding: Console is typically paired with a
// metrics.Collector (see Report) rather than used as the StatsCollector
// directly, but exposes this so it can also be wired in standalone.
func (c *Console) PhaseStatusChanged(phase, status string) {
	icon := InfoIcon(c.noColor)
	statusColor := c.scheme.StatusRun
	switch status {
	case "FINISHED":
		statusColor = c.scheme.StatusFinish
	case "TERMINATED":
		statusColor = c.scheme.StatusFinish
	case "TERMINATING":
		statusColor = c.scheme.StatusFail
	}
	fmt.Fprintf(c.w, "%s %s %s\n", icon, c.scheme.PhaseName.Sprint(phase), statusColor.Sprint(status))
}

// Report prints a final summary from a metrics.Collector snapshot: totals,
// per-phase counts, and latency percentiles.
func (c *Console) Report(snap metrics.Snapshot) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.scheme.Highlight.Sprint("=== Benchmark summary ==="))
	fmt.Fprintf(c.w, "%s %d\n", c.scheme.Label.Sprint("sessions started:"), snap.Started)
	fmt.Fprintf(c.w, "%s %d\n", c.scheme.Label.Sprint("sessions finished:"), snap.Finished)
	if snap.Failed > 0 {
		fmt.Fprintf(c.w, "%s %d\n", c.scheme.Error.Sprint("sessions failed:"), snap.Failed)
	}
	if snap.Blocked > 0 {
		fmt.Fprintf(c.w, "%s %d\n", c.scheme.Error.Sprint("saturation events:"), snap.Blocked)
	}
	fmt.Fprintf(c.w, "%s %s\n", c.scheme.Label.Sprint("elapsed:"), snap.Elapsed)

	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.scheme.Label.Sprint("latency:"))
	fmt.Fprintf(c.w, "  p50=%s p90=%s p95=%s p99=%s max=%s\n",
		snap.Latency.P50, snap.Latency.P90, snap.Latency.P95, snap.Latency.P99, snap.Latency.Max)

	if len(snap.PerPhase) > 0 {
		fmt.Fprintln(c.w)
		fmt.Fprintln(c.w, c.scheme.Label.Sprint("per phase:"))
		for name, ps := range snap.PerPhase {
			fmt.Fprintf(c.w, "  %s: started=%d finished=%d failed=%d blocked=%d\n",
				c.scheme.PhaseName.Sprint(name), ps.Started, ps.Finished, ps.Failed, ps.Blocked)
		}
	}
}
