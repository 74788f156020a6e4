// Package domain models a single-component strong-motion record
// (accelerogram) and the aggregate measures derived from it.
//
// # Input Conventions
//
// A record arrives as two plain-text files with no header:
//
//	time file:  0.00 0.01 0.02 ...      seconds, uniformly sampled
//	accel file: 0.003 -0.012 0.041 ...  acceleration, unit unknown
//
// Values are separated by any whitespace (spaces, tabs, newlines). The
// sampling interval is taken from the first two time samples only; the
// record is assumed to be uniformly sampled and that assumption is not
// checked beyond rejecting a zero or negative first step.
//
// # Unit Heuristic
//
// Accelerograms are distributed in g, m/s² or cm/s² and the files carry
// no unit. The PGA magnitude is used to guess:
//
//	PGA < 2.0         -> g      (2 g is beyond almost any recorded motion)
//	2.0 <= PGA < 20.0 -> m/s²
//	PGA >= 20.0       -> ambiguous: a very strong record in m/s², or cm/s²
//
// The thresholds are fixed literals and carry no statistical basis. See
// [ClassifyUnit].
//
// # Event Trigger
//
// [DetectTrigger] runs a classic STA/LTA detector over |a(t)| with a
// 0.5 s short window, a 6 s long window and a ratio threshold of 4. It
// operates on the raw record; no filtering is applied.
package domain
