package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all analyzer settings, populated from environment variables.
// The defaults reproduce the fixed file-name conventions of a bare run.
type Config struct {
	TimeFile  string
	AccelFile string
	PlotFile  string

	LogLevel  string
	LogFormat string

	// Optional outputs. Empty disables them.
	ReportJSON  string
	MetricsFile string

	// Report publishing, enabled when brokers are configured.
	KafkaBrokers     []string
	KafkaReportTopic string
	KafkaTimeout     time.Duration
	KafkaEnabled     bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	kafkaTimeoutStr := sharedcfg.EnvOrDefault("KAFKA_TIMEOUT", "10s")
	kafkaTimeout, err := time.ParseDuration(kafkaTimeoutStr)
	if err != nil || kafkaTimeout <= 0 {
		return nil, errors.New("invalid KAFKA_TIMEOUT")
	}

	var brokers []string
	if raw := strings.TrimSpace(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "")); raw != "" {
		brokers = sharedcfg.ParseBrokers(raw)
	}

	cfg := &Config{
		TimeFile:  sharedcfg.EnvOrDefault("TIME_FILE", "tempo.txt"),
		AccelFile: sharedcfg.EnvOrDefault("ACCEL_FILE", "top.txt"),
		PlotFile:  sharedcfg.EnvOrDefault("PLOT_FILE", "accelerogramma.png"),
		LogLevel:  strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "text")),

		ReportJSON:  sharedcfg.EnvOrDefault("REPORT_JSON", ""),
		MetricsFile: sharedcfg.EnvOrDefault("METRICS_FILE", ""),

		KafkaBrokers:     brokers,
		KafkaReportTopic: sharedcfg.EnvOrDefault("KAFKA_REPORT_TOPIC", "accelerogram-reports"),
		KafkaTimeout:     kafkaTimeout,
		KafkaEnabled:     len(brokers) > 0,
	}

	if cfg.TimeFile == "" {
		return nil, errors.New("TIME_FILE is required")
	}
	if cfg.AccelFile == "" {
		return nil, errors.New("ACCEL_FILE is required")
	}
	if cfg.PlotFile == "" {
		return nil, errors.New("PLOT_FILE is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: want debug, info, warn or error", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}
	if cfg.KafkaEnabled && cfg.KafkaReportTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_REPORT_TOPIC is empty")
	}

	return cfg, nil
}
