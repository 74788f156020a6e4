package domain

import (
	"github.com/google/uuid"
)

// Analyze runs the pure stages over a loaded record in order: sampling,
// PGA, unit guess, statistics and trigger. The first failing stage
// aborts the analysis. PlotPath is left for the caller to fill in.
func Analyze(ts TimeSeries) (Report, error) {
	sampling, err := AnalyzeSampling(ts.Time)
	if err != nil {
		return Report{}, err
	}
	peak, err := ExtractPGA(ts.Accel)
	if err != nil {
		return Report{}, err
	}
	unit := ClassifyUnit(peak.PGA)

	return NewReport(ts, sampling, peak, unit), nil
}

// NewReport assembles a report from stage outputs, deriving statistics
// and the trigger, and stamps it with a fresh run ID and the current time.
func NewReport(ts TimeSeries, sampling SamplingInfo, peak PgaResult, unit UnitGuess) Report {
	return Report{
		RunID:       uuid.NewString(),
		TimeSource:  ts.TimeSource,
		AccelSource: ts.AccelSource,
		Sampling:    sampling,
		Peak:        peak,
		Unit:        unit,
		Stats:       ComputeStats(ts, sampling, peak, unit),
		Trigger:     DetectTrigger(ts.Accel, sampling, DefaultTriggerParams()),
		AnalyzedAt:  clock.Now().UTC(),
	}
}
