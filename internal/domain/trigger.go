package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TriggerParams configures the STA/LTA detector.
type TriggerParams struct {
	STASeconds float64
	LTASeconds float64
	Threshold  float64
}

// DefaultTriggerParams returns the windows and ratio used for on-site
// early warning: 0.5 s STA, 6 s LTA, ratio 4.
func DefaultTriggerParams() TriggerParams {
	return TriggerParams{
		STASeconds: 0.5,
		LTASeconds: 6.0,
		Threshold:  4.0,
	}
}

// TriggerResult is the first sample at which STA/LTA exceeded the
// threshold. Evaluated is false when the record is shorter than the LTA
// window.
type TriggerResult struct {
	Evaluated bool    `json:"evaluated"`
	Triggered bool    `json:"triggered"`
	Index     int     `json:"index"`
	Time      float64 `json:"time_s"`
	Ratio     float64 `json:"ratio"`
}

// minLTAAverage guards the ratio against an all-zero long window.
const minLTAAverage = 1e-9

// DetectTrigger scans |accel| with running short and long window sums and
// reports the first index where their averaged ratio exceeds the
// threshold. The time of the trigger is index*dt.
func DetectTrigger(accel []float64, s SamplingInfo, p TriggerParams) TriggerResult {
	staLen := windowLen(p.STASeconds, s.FS)
	ltaLen := windowLen(p.LTASeconds, s.FS)
	res := TriggerResult{Index: -1}
	if len(accel) < ltaLen || staLen > ltaLen {
		return res
	}
	res.Evaluated = true

	abs := make([]float64, len(accel))
	for i, a := range accel {
		abs[i] = math.Abs(a)
	}

	start := ltaLen - 1
	ltaSum := floats.Sum(abs[:ltaLen])
	staSum := floats.Sum(abs[ltaLen-staLen : ltaLen])

	for i := start; i < len(abs); i++ {
		if i > start {
			staSum += abs[i] - abs[i-staLen]
			ltaSum += abs[i] - abs[i-ltaLen]
		}

		ltaAvg := ltaSum / float64(ltaLen)
		var ratio float64
		if ltaAvg > minLTAAverage {
			ratio = (staSum / float64(staLen)) / ltaAvg
		}
		if ratio > p.Threshold {
			res.Triggered = true
			res.Index = i
			res.Time = float64(i) * s.DT
			res.Ratio = ratio
			return res
		}
	}
	return res
}

// windowLen converts a window in seconds to a whole number of samples,
// truncating any fraction, with a minimum of 1.
func windowLen(seconds, fs float64) int {
	return max(int(seconds*fs), 1)
}
