package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AnalyzeSampling derives the sampling interval from the first two time
// samples. A record with fewer than two samples, or whose first step is
// not positive, has no usable sampling rate.
func AnalyzeSampling(t []float64) (SamplingInfo, error) {
	if len(t) < 2 {
		return SamplingInfo{}, &InvalidSamplingError{Samples: len(t)}
	}
	dt := t[1] - t[0]
	if dt <= 0 || math.IsNaN(dt) {
		return SamplingInfo{}, &InvalidSamplingError{Samples: len(t), DT: dt}
	}
	return SamplingInfo{DT: dt, FS: 1 / dt}, nil
}

// ExtractPGA returns the largest absolute acceleration in the record.
// The result does not depend on sample order; Index is the first sample
// that attains it.
func ExtractPGA(accel []float64) (PgaResult, error) {
	if len(accel) == 0 {
		return PgaResult{}, &EmptySeriesError{Series: "acceleration"}
	}
	abs := make([]float64, len(accel))
	for i, a := range accel {
		abs[i] = math.Abs(a)
	}
	idx := floats.MaxIdx(abs)
	return PgaResult{PGA: abs[idx], Index: idx}, nil
}

// ComputeStats summarizes the record. PGA is expressed in g and m/s²
// according to the unit guess; an ambiguous guess is reported in m/s²
// only.
func ComputeStats(ts TimeSeries, s SamplingInfo, peak PgaResult, unit UnitGuess) RecordStats {
	n := len(ts.Accel)
	rs := RecordStats{
		Samples:  n,
		Duration: float64(n) * s.DT,
	}
	if peak.Index < len(ts.Time) {
		rs.PeakTime = ts.Time[peak.Index]
	}
	if n > 0 {
		rs.Mean = stat.Mean(ts.Accel, nil)
		rs.RMS = math.Sqrt(floats.Dot(ts.Accel, ts.Accel) / float64(n))
	}

	switch unit.Unit {
	case UnitG:
		rs.PGAInG = peak.PGA
		rs.PGAInMS2 = peak.PGA * StandardGravity
	case UnitMS2:
		rs.PGAInG = peak.PGA / StandardGravity
		rs.PGAInMS2 = peak.PGA
	default:
		rs.PGAInMS2 = peak.PGA
	}
	return rs
}
