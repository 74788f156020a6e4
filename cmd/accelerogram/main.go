package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/accelerogram/internal/adapter/chart"
	kafkaadapter "github.com/couchcryptid/accelerogram/internal/adapter/kafka"
	"github.com/couchcryptid/accelerogram/internal/adapter/textfile"
	"github.com/couchcryptid/accelerogram/internal/config"
	"github.com/couchcryptid/accelerogram/internal/observability"
	"github.com/couchcryptid/accelerogram/internal/pipeline"
	"github.com/couchcryptid/accelerogram/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	opts := []pipeline.Option{}
	if cfg.ReportJSON != "" {
		opts = append(opts, pipeline.WithReportJSON(cfg.ReportJSON))
	}

	// Report publishing is feature-flagged via KAFKA_BROKERS.
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		opts = append(opts, pipeline.WithPublisher(writer))
		logger.Info("report publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaReportTopic)
	}

	p := pipeline.New(
		textfile.NewLoader(cfg.TimeFile, cfg.AccelFile, logger),
		chart.NewRenderer(cfg.PlotFile, logger),
		report.NewConsole(os.Stdout),
		logger,
		metrics,
		opts...,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, runErr := p.Run(ctx)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("metrics export failed", "path", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		logger.Error("analysis failed", "error", runErr)
		return 1
	}
	return 0
}
