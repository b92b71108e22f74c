// Package output is the core's console reporter: it renders phase status
// transitions and the final run summary, grounded on the teacher's
// fatih/color + go-isatty console tooling rather than a structured logger
// (the core's "logging" surface is this reporter, fed entirely through
// metrics.Collector snapshots and the phase.StatsCollector
// PhaseStatusChanged event).
package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements of a
// benchmark run's console output.
type ColorScheme struct {
	PhaseName    *color.Color
	StatusRun    *color.Color
	StatusFinish *color.Color
	StatusFail   *color.Color
	Label        *color.Color
	Value        *color.Color
	Success      *color.Color
	Error        *color.Color
	Highlight    *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		PhaseName:    color.New(color.FgCyan, color.Bold),
		StatusRun:    color.New(color.FgBlue, color.Bold),
		StatusFinish: color.New(color.FgGreen, color.Bold),
		StatusFail:   color.New(color.FgRed, color.Bold),
		Label:        color.New(color.FgYellow),
		Value:        color.New(color.FgWhite),
		Success:      color.New(color.FgGreen),
		Error:        color.New(color.FgRed),
		Highlight:    color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.PhaseName.DisableColor()
	scheme.StatusRun.DisableColor()
	scheme.StatusFinish.DisableColor()
	scheme.StatusFail.DisableColor()
	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Highlight.DisableColor()

	return scheme
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// InfoIcon returns an info symbol with appropriate color
func InfoIcon(noColor bool) string {
	if noColor {
		return "ℹ"
	}
	return color.New(color.FgBlue).Sprint("ℹ")
}

// WarningIcon returns a warning symbol with appropriate color
func WarningIcon(noColor bool) string {
	if noColor {
		return "⚠"
	}
	return color.New(color.FgYellow).Sprint("⚠")
}
