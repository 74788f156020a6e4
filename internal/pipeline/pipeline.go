package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/accelerogram/internal/domain"
	"github.com/couchcryptid/accelerogram/internal/observability"
	"github.com/couchcryptid/accelerogram/internal/report"
)

// SeriesLoader reads the time and acceleration sequences of one record.
type SeriesLoader interface {
	Load(ctx context.Context) (domain.TimeSeries, error)
}

// Renderer draws the record and returns the path of the written image.
type Renderer interface {
	Render(ctx context.Context, ts domain.TimeSeries, peak domain.PgaResult) (string, error)
}

// ReportPublisher ships the finished report to an external system.
type ReportPublisher interface {
	Publish(ctx context.Context, r domain.Report) error
}

// Stage names used in logs and metric labels.
const (
	stageLoad    = "load"
	stageAnalyze = "analyze"
	stageRender  = "render"
	stageReport  = "report"
	stagePublish = "publish"
)

// Pipeline runs load, analyze, render and report once, in order.
type Pipeline struct {
	loader    SeriesLoader
	renderer  Renderer
	publisher ReportPublisher
	console   *report.Console
	logger    *slog.Logger
	metrics   *observability.Metrics

	reportJSON string
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithPublisher sends the report to p after the plot is written.
func WithPublisher(p ReportPublisher) Option {
	return func(pl *Pipeline) { pl.publisher = p }
}

// WithReportJSON writes the report as JSON to path.
func WithReportJSON(path string) Option {
	return func(pl *Pipeline) { pl.reportJSON = path }
}

// New creates a Pipeline with the given stages and observability.
func New(l SeriesLoader, r Renderer, console *report.Console, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Pipeline {
	p := &Pipeline{
		loader:   l,
		renderer: r,
		console:  console,
		logger:   logger,
		metrics:  metrics,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes a single forward pass. The first failing stage stops the
// run; its error is returned wrapped and remains matchable with errors.Is
// against the domain sentinels.
func (p *Pipeline) Run(ctx context.Context) (domain.Report, error) {
	var ts domain.TimeSeries
	err := p.stage(stageLoad, func() error {
		var err error
		ts, err = p.loader.Load(ctx)
		return err
	})
	if err != nil {
		return domain.Report{}, err
	}
	p.metrics.SamplesLoaded.WithLabelValues("time").Add(float64(len(ts.Time)))
	p.metrics.SamplesLoaded.WithLabelValues("accel").Add(float64(len(ts.Accel)))

	var rep domain.Report
	err = p.stage(stageAnalyze, func() error {
		var err error
		rep, err = domain.Analyze(ts)
		return err
	})
	if err != nil {
		return domain.Report{}, err
	}
	p.recordAnalysis(rep)
	p.logger.Info("record analyzed",
		"samples", rep.Stats.Samples,
		"dt", rep.Sampling.DT,
		"pga", rep.Peak.PGA,
		"unit", rep.Unit.Unit,
		"triggered", rep.Trigger.Triggered,
	)
	p.console.PrintAnalysis(rep)

	err = p.stage(stageRender, func() error {
		path, err := p.renderer.Render(ctx, ts, rep.Peak)
		rep.PlotPath = path
		return err
	})
	if err != nil {
		return rep, err
	}
	p.console.PrintPlotSaved(rep.PlotPath)

	if p.reportJSON != "" {
		if err := p.stage(stageReport, func() error { return report.WriteJSON(p.reportJSON, rep) }); err != nil {
			return rep, err
		}
	}

	if p.publisher != nil {
		if err := p.stage(stagePublish, func() error { return p.publisher.Publish(ctx, rep) }); err != nil {
			return rep, err
		}
		p.metrics.ReportsPublished.Inc()
	}

	p.metrics.LastRunTimestamp.SetToCurrentTime()
	return rep, nil
}

// stage times fn and counts its failure under name.
func (p *Pipeline) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	p.metrics.StageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.StageFailures.WithLabelValues(name).Inc()
		p.logger.Error("stage failed", "stage", name, "error", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (p *Pipeline) recordAnalysis(rep domain.Report) {
	p.metrics.PGA.Set(rep.Peak.PGA)
	p.metrics.SamplingFrequency.Set(rep.Sampling.FS)
	for _, u := range []domain.Unit{domain.UnitG, domain.UnitMS2, domain.UnitAmbiguousHigh} {
		v := 0.0
		if u == rep.Unit.Unit {
			v = 1
		}
		p.metrics.UnitGuess.WithLabelValues(string(u)).Set(v)
	}
	if rep.Trigger.Triggered {
		p.metrics.TriggerFired.Set(1)
	} else {
		p.metrics.TriggerFired.Set(0)
	}
}
