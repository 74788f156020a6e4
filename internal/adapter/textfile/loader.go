package textfile

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/couchcryptid/accelerogram/internal/domain"
)

// maxTokenSize bounds a single whitespace-delimited token.
const maxTokenSize = 1 << 20

// Loader reads a record from a pair of whitespace-delimited numeric files.
// It implements pipeline.SeriesLoader.
type Loader struct {
	timePath  string
	accelPath string
	logger    *slog.Logger
}

// NewLoader creates a Loader for the given time and acceleration files.
func NewLoader(timePath, accelPath string, logger *slog.Logger) *Loader {
	return &Loader{timePath: timePath, accelPath: accelPath, logger: logger}
}

// Load parses both files in full. Any failure aborts the load and is
// returned as a *domain.DataLoadError naming the offending file.
func (l *Loader) Load(ctx context.Context) (domain.TimeSeries, error) {
	t, err := ReadFloats(l.timePath)
	if err != nil {
		return domain.TimeSeries{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.TimeSeries{}, err
	}
	a, err := ReadFloats(l.accelPath)
	if err != nil {
		return domain.TimeSeries{}, err
	}

	ts := domain.TimeSeries{
		Time:        t,
		Accel:       a,
		TimeSource:  l.timePath,
		AccelSource: l.accelPath,
	}
	if !ts.Aligned() {
		l.logger.Warn("time and acceleration lengths differ",
			"time_file", l.timePath, "time_samples", len(t),
			"accel_file", l.accelPath, "accel_samples", len(a),
		)
	}
	l.logger.Debug("record loaded", "samples", ts.Len())
	return ts, nil
}

// ReadFloats parses every whitespace-separated token in path as a float64,
// in file order. NaN and infinite values are rejected.
func ReadFloats(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	var values []float64
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &domain.DataLoadError{
				Path: path,
				Err:  fmt.Errorf("value %d: non-numeric token %q", len(values)+1, tok),
			}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &domain.DataLoadError{
				Path: path,
				Err:  fmt.Errorf("value %d: non-finite token %q", len(values)+1, tok),
			}
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.DataLoadError{Path: path, Err: err}
	}
	return values, nil
}
