// Command gensynth writes a synthetic accelerogram as a pair of plain-text
// files (one time value and one acceleration value per line) for demos and
// test fixtures. The record is low-level noise followed by a windowed
// sinusoidal burst scaled to the requested PGA.
//
// Usage:
//
//	go run ./cmd/gensynth -dir data -fs 100 -duration 40 -onset 12 -pga 0.85
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/couchcryptid/accelerogram/internal/adapter/textfile"
	"github.com/couchcryptid/accelerogram/internal/domain"
)

// synthParams describes the generated record.
type synthParams struct {
	FS        float64 // sampling frequency, Hz
	Duration  float64 // seconds
	Onset     float64 // burst start, seconds
	PGA       float64 // target peak absolute acceleration
	Frequency float64 // burst carrier frequency, Hz
	Noise     float64 // noise amplitude relative to PGA
	Seed      uint64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dir := flag.String("dir", ".", "output directory")
	timeName := flag.String("time-file", "tempo.txt", "time file name")
	accelName := flag.String("accel-file", "top.txt", "acceleration file name")
	fs := flag.Float64("fs", 100, "sampling frequency in Hz")
	duration := flag.Float64("duration", 40, "record length in seconds")
	onset := flag.Float64("onset", 12, "burst onset in seconds")
	pga := flag.Float64("pga", 0.85, "target PGA in the record's unit")
	freq := flag.Float64("freq", 2.5, "burst carrier frequency in Hz")
	noise := flag.Float64("noise", 0.002, "noise amplitude as a fraction of PGA")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	p := synthParams{
		FS: *fs, Duration: *duration, Onset: *onset, PGA: *pga,
		Frequency: *freq, Noise: *noise, Seed: *seed,
	}
	if err := p.validate(); err != nil {
		flag.Usage()
		return err
	}

	ts := synthesize(p)

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}
	timePath := filepath.Join(*dir, *timeName)
	accelPath := filepath.Join(*dir, *accelName)
	if err := writeColumn(timePath, ts.Time); err != nil {
		return fmt.Errorf("writing time file: %w", err)
	}
	if err := writeColumn(accelPath, ts.Accel); err != nil {
		return fmt.Errorf("writing acceleration file: %w", err)
	}

	rep, err := verifyRecord(timePath, accelPath)
	if err != nil {
		return err
	}
	log.Printf("wrote %s and %s: %d samples, dt=%.7f s, fs=%.4f Hz, PGA=%.6f (%s), trigger=%v",
		timePath, accelPath, rep.Stats.Samples, rep.Sampling.DT, rep.Sampling.FS,
		rep.Peak.PGA, rep.Unit.Unit, rep.Trigger.Triggered)
	return nil
}

// verifyRecord reads the written files back and analyzes them with the
// same stages the analyzer uses.
func verifyRecord(timePath, accelPath string) (domain.Report, error) {
	t, err := textfile.ReadFloats(timePath)
	if err != nil {
		return domain.Report{}, err
	}
	a, err := textfile.ReadFloats(accelPath)
	if err != nil {
		return domain.Report{}, err
	}
	rep, err := domain.Analyze(domain.TimeSeries{Time: t, Accel: a, TimeSource: timePath, AccelSource: accelPath})
	if err != nil {
		return domain.Report{}, fmt.Errorf("analyze synthetic record: %w", err)
	}
	return rep, nil
}

func (p synthParams) validate() error {
	switch {
	case p.FS <= 0:
		return fmt.Errorf("fs must be positive, got %g", p.FS)
	case p.Duration*p.FS < 2:
		return fmt.Errorf("duration %g s at %g Hz gives fewer than 2 samples", p.Duration, p.FS)
	case p.PGA <= 0:
		return fmt.Errorf("pga must be positive, got %g", p.PGA)
	case p.Onset < 0 || p.Onset >= p.Duration:
		return fmt.Errorf("onset %g s is outside the record", p.Onset)
	}
	return nil
}

// synthesize builds the record. The burst rises linearly over one second
// and then decays exponentially; the whole trace is rescaled so that its
// largest absolute value equals PGA.
func synthesize(p synthParams) domain.TimeSeries {
	n := int(math.Round(p.Duration * p.FS))
	dt := 1 / p.FS
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))

	t := make([]float64, n)
	a := make([]float64, n)
	for i := range n {
		t[i] = float64(i) * dt
		a[i] = p.Noise * rng.NormFloat64()
		if rel := t[i] - p.Onset; rel >= 0 {
			env := math.Min(rel, 1) * math.Exp(-0.25*math.Max(rel-1, 0))
			a[i] += env * math.Sin(2*math.Pi*p.Frequency*rel)
		}
	}

	abs := make([]float64, n)
	for i, v := range a {
		abs[i] = math.Abs(v)
	}
	if peak := floats.Max(abs); peak > 0 {
		floats.Scale(p.PGA/peak, a)
	}
	return domain.TimeSeries{Time: t, Accel: a}
}

// writeColumn writes one value per line with the shortest representation
// that parses back to the same float64.
func writeColumn(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	buf := make([]byte, 0, 32)
	for _, v := range values {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
