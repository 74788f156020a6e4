package chart

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/couchcryptid/accelerogram/internal/domain"
)

// Canvas geometry of the written image: 12x4 in at 150 DPI, 1800x600 px.
const (
	canvasWidth  = 12 * vg.Inch
	canvasHeight = 4 * vg.Inch
	canvasDPI    = 150
)

var peakColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}

// Renderer draws an accelerogram as a PNG line plot.
// It implements pipeline.Renderer.
type Renderer struct {
	path   string
	logger *slog.Logger
}

// NewRenderer creates a Renderer that writes to path, replacing any
// existing file.
func NewRenderer(path string, logger *slog.Logger) *Renderer {
	return &Renderer{path: path, logger: logger}
}

// Render plots acceleration against time with the PGA in the title and a
// marker on the peak sample. Samples beyond the shorter of the two
// sequences are not drawn. Failures are returned as *domain.RenderError.
func (r *Renderer) Render(_ context.Context, ts domain.TimeSeries, peak domain.PgaResult) (string, error) {
	p, err := buildPlot(ts, peak)
	if err != nil {
		return "", &domain.RenderError{Path: r.path, Err: err}
	}

	c := vgimg.NewWith(vgimg.UseWH(canvasWidth, canvasHeight), vgimg.UseDPI(canvasDPI))
	p.Draw(draw.New(c))

	if err := writePNG(r.path, c); err != nil {
		return "", &domain.RenderError{Path: r.path, Err: err}
	}
	r.logger.Debug("plot written", "path", r.path, "samples", ts.Len())
	return r.path, nil
}

func buildPlot(ts domain.TimeSeries, peak domain.PgaResult) (*plot.Plot, error) {
	n := ts.Len()
	xys := make(plotter.XYs, n)
	for i := range n {
		xys[i].X = ts.Time[i]
		xys[i].Y = ts.Accel[i]
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Accelerogram - PGA=%.3f", peak.PGA)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Acceleration"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(0.6)
	p.Add(line)

	if peak.Index < n {
		marker, err := plotter.NewScatter(plotter.XYs{xys[peak.Index]})
		if err != nil {
			return nil, fmt.Errorf("build peak marker: %w", err)
		}
		marker.GlyphStyle.Color = peakColor
		marker.GlyphStyle.Shape = draw.CircleGlyph{}
		marker.GlyphStyle.Radius = vg.Points(3)
		p.Add(marker)
	}
	return p, nil
}

func writePNG(path string, c *vgimg.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(f)
	return err
}
