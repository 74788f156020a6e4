package chart

import (
	"context"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/accelerogram/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sineRecord(n int) domain.TimeSeries {
	ts := domain.TimeSeries{Time: make([]float64, n), Accel: make([]float64, n)}
	for i := range n {
		ts.Time[i] = float64(i) * 0.01
		ts.Accel[i] = 0.3 * math.Sin(float64(i)*0.2)
	}
	return ts
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestRenderer_Render(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accelerogramma.png")
	ts := sineRecord(1000)

	got, err := NewRenderer(path, discardLogger()).Render(context.Background(), ts, domain.PgaResult{PGA: 0.3, Index: 8})
	require.NoError(t, err)
	assert.Equal(t, path, got)

	w, h := decodeSize(t, path)
	assert.InDelta(t, 1800, w, 1)
	assert.InDelta(t, 600, h, 1)
}

func TestRenderer_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accelerogramma.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, err := NewRenderer(path, discardLogger()).Render(context.Background(), sineRecord(50), domain.PgaResult{PGA: 0.3})
	require.NoError(t, err)

	w, _ := decodeSize(t, path)
	assert.InDelta(t, 1800, w, 1)
}

func TestRenderer_MisalignedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	ts := sineRecord(100)
	ts.Accel = append(ts.Accel, 2.5)

	_, err := NewRenderer(path, discardLogger()).Render(context.Background(), ts, domain.PgaResult{PGA: 2.5, Index: 100})
	require.NoError(t, err)
}

func TestRenderer_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "accelerogramma.png")

	_, err := NewRenderer(path, discardLogger()).Render(context.Background(), sineRecord(10), domain.PgaResult{PGA: 0.3})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.Contains(t, err.Error(), path)
}

func TestBuildPlot_Title(t *testing.T) {
	p, err := buildPlot(sineRecord(10), domain.PgaResult{PGA: 0.8512, Index: 3})
	require.NoError(t, err)
	assert.Equal(t, "Accelerogram - PGA=0.851", p.Title.Text)
	assert.Equal(t, "Time (s)", p.X.Label.Text)
	assert.Equal(t, "Acceleration", p.Y.Label.Text)
}

func TestBuildPlot_NaNRejected(t *testing.T) {
	ts := sineRecord(10)
	ts.Accel[4] = math.NaN()

	_, err := buildPlot(ts, domain.PgaResult{PGA: 0.3})
	require.Error(t, err)
}
