package domain

import "time"

// StandardGravity is the value of 1 g in m/s² used for unit conversions.
const StandardGravity = 9.81

// TimeSeries holds a record as two parallel sequences sharing an index.
// It is built once by the loader and never mutated afterwards.
type TimeSeries struct {
	Time  []float64
	Accel []float64

	TimeSource  string
	AccelSource string
}

// Len returns the number of samples present in both sequences.
func (ts TimeSeries) Len() int {
	return min(len(ts.Time), len(ts.Accel))
}

// Aligned reports whether both sequences have the same length.
func (ts TimeSeries) Aligned() bool {
	return len(ts.Time) == len(ts.Accel)
}

// SamplingInfo is the uniform sampling interval and its reciprocal.
type SamplingInfo struct {
	DT float64 `json:"dt"`
	FS float64 `json:"fs"`
}

// PgaResult is the peak absolute acceleration and the first index at
// which it occurs.
type PgaResult struct {
	PGA   float64 `json:"pga"`
	Index int     `json:"index"`
}

// RecordStats summarizes the record around its peak.
type RecordStats struct {
	Samples  int     `json:"samples"`
	Duration float64 `json:"duration_s"`
	PeakTime float64 `json:"peak_time_s"`
	Mean     float64 `json:"mean"`
	RMS      float64 `json:"rms"`
	PGAInG   float64 `json:"pga_g,omitempty"`
	PGAInMS2 float64 `json:"pga_ms2,omitempty"`
}

// Report is the complete outcome of one analysis run.
type Report struct {
	RunID       string        `json:"run_id"`
	TimeSource  string        `json:"time_source"`
	AccelSource string        `json:"accel_source"`
	Sampling    SamplingInfo  `json:"sampling"`
	Peak        PgaResult     `json:"peak"`
	Unit        UnitGuess     `json:"unit"`
	Stats       RecordStats   `json:"stats"`
	Trigger     TriggerResult `json:"trigger"`
	PlotPath    string        `json:"plot_path,omitempty"`
	AnalyzedAt  time.Time     `json:"analyzed_at"`
}
