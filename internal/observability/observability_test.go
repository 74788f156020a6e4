package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	logger.Info("record loaded", "samples", 4000)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "record loaded", entry["msg"])
	assert.Equal(t, float64(4000), entry["samples"])
}

func TestNewLogger_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "text")

	logger.Info("hidden")
	logger.Warn("lengths differ", "time", 10, "accel", 9)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "lengths differ")
	assert.Contains(t, out, "accel=9")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetricsForTesting()
	m.SamplesLoaded.WithLabelValues("accel").Add(4000)
	m.PGA.Set(0.85)
	m.SamplingFrequency.Set(100)
	m.UnitGuess.WithLabelValues("g").Set(1)

	assert.InDelta(t, 4000.0, testutil.ToFloat64(m.SamplesLoaded.WithLabelValues("accel")), 1e-9)

	path := filepath.Join(t.TempDir(), "accelerogram.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `accelerogram_samples_loaded_total{series="accel"} 4000`)
	assert.Contains(t, out, "accelerogram_peak_ground_acceleration 0.85")
	assert.Contains(t, out, "accelerogram_sampling_frequency_hertz 100")
	assert.Contains(t, out, `accelerogram_unit_guess{unit="g"} 1`)
}

func TestMetrics_WriteTextfileBadPath(t *testing.T) {
	m := NewMetricsForTesting()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write metrics textfile")
}
