package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/accelerogram/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() domain.Report {
	return domain.Report{
		RunID:       "run-1",
		TimeSource:  "tempo.txt",
		AccelSource: "top.txt",
		Sampling:    domain.SamplingInfo{DT: 0.01, FS: 100},
		Peak:        domain.PgaResult{PGA: 0.85, Index: 412},
		Unit:        domain.ClassifyUnit(0.85),
		Stats:       domain.RecordStats{Samples: 4000, Duration: 40, PeakTime: 4.12},
		Trigger:     domain.TriggerResult{Evaluated: true, Index: -1},
		AnalyzedAt:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestConsole_PrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PrintAnalysis(sampleReport())
	c.PrintPlotSaved("accelerogramma.png")

	want := "dt = 0.010000 s\n" +
		"Sampling frequency = 100.0 Hz\n" +
		"\n" +
		"PGA = 0.850000\n" +
		"Probable unit: g (equivalent to 8.34 m/s²)\n" +
		"\n" +
		"Samples: 4000 (duration: 40.0 s)\n" +
		"Peak at t = 4.120 s (sample 412)\n" +
		"Trigger: none (STA/LTA never exceeded the threshold)\n" +
		"\n" +
		"Plot saved: accelerogramma.png\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("console output mismatch (-want +got):\n%s", diff)
	}
}

func TestUnitLine(t *testing.T) {
	tests := []struct {
		name string
		pga  float64
		want string
	}{
		{"g", 0.85, "Probable unit: g (equivalent to 8.34 m/s²)"},
		{"m/s²", 5.2, "Probable unit: m/s² (equivalent to 0.530 g)"},
		{"ambiguous", 25.0, "Probable unit: m/s² (high value!) or cm/s²"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnitLine(domain.ClassifyUnit(tt.pga)))
		})
	}
}

func TestTriggerLine(t *testing.T) {
	assert.Equal(t, "Trigger: not evaluated (record shorter than the LTA window)",
		TriggerLine(domain.TriggerResult{Index: -1}))
	assert.Equal(t, "Trigger: t = 10.020 s (sample 1002, STA/LTA = 8.41)",
		TriggerLine(domain.TriggerResult{Evaluated: true, Triggered: true, Index: 1002, Time: 10.02, Ratio: 8.414}))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	r := sampleReport()

	require.NoError(t, WriteJSON(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r, got)
}

func TestWriteJSON_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	err := WriteJSON(path, sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
