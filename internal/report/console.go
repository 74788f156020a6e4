// Package report renders an analysis for people (console lines) and for
// programs (a JSON document).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/accelerogram/internal/domain"
)

// Console prints the human-readable report. The lines carry no stable
// schema; use WriteJSON for machine consumption.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// PrintAnalysis writes sampling, PGA, unit guess, record statistics and
// the trigger outcome.
func (c *Console) PrintAnalysis(r domain.Report) {
	fmt.Fprintf(c.w, "dt = %.6f s\n", r.Sampling.DT)
	fmt.Fprintf(c.w, "Sampling frequency = %.1f Hz\n", r.Sampling.FS)

	fmt.Fprintf(c.w, "\nPGA = %.6f\n", r.Peak.PGA)
	fmt.Fprintln(c.w, UnitLine(r.Unit))

	fmt.Fprintf(c.w, "\nSamples: %d (duration: %.1f s)\n", r.Stats.Samples, r.Stats.Duration)
	fmt.Fprintf(c.w, "Peak at t = %.3f s (sample %d)\n", r.Stats.PeakTime, r.Peak.Index)
	fmt.Fprintln(c.w, TriggerLine(r.Trigger))
}

// PrintPlotSaved confirms the plot file was written.
func (c *Console) PrintPlotSaved(path string) {
	fmt.Fprintf(c.w, "\nPlot saved: %s\n", path)
}

// UnitLine describes the unit guess and, when there is one, the PGA in the
// alternate unit: 2 decimals for m/s², 3 for g.
func UnitLine(u domain.UnitGuess) string {
	switch u.Unit {
	case domain.UnitG:
		return fmt.Sprintf("Probable unit: g (equivalent to %.2f m/s²)", u.Equivalent)
	case domain.UnitMS2:
		return fmt.Sprintf("Probable unit: m/s² (equivalent to %.3f g)", u.Equivalent)
	default:
		return "Probable unit: m/s² (high value!) or cm/s²"
	}
}

// TriggerLine summarizes the STA/LTA outcome.
func TriggerLine(tr domain.TriggerResult) string {
	switch {
	case !tr.Evaluated:
		return "Trigger: not evaluated (record shorter than the LTA window)"
	case !tr.Triggered:
		return "Trigger: none (STA/LTA never exceeded the threshold)"
	default:
		return fmt.Sprintf("Trigger: t = %.3f s (sample %d, STA/LTA = %.2f)", tr.Time, tr.Index, tr.Ratio)
	}
}

// WriteJSON writes the report as indented JSON to path, replacing any
// existing file.
func WriteJSON(path string, r domain.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
