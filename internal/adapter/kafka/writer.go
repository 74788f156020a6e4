package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/accelerogram/internal/config"
	"github.com/couchcryptid/accelerogram/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes analysis reports to a Kafka topic.
// It implements pipeline.ReportPublisher.
type Writer struct {
	writer  *kafkago.Writer
	timeout time.Duration
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured report topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaReportTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, timeout: cfg.KafkaTimeout, logger: logger}
}

// Publish serializes the report and writes it synchronously, keyed by run ID.
func (w *Writer) Publish(ctx context.Context, report domain.Report) error {
	msg, err := serializeToMessage(report)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish report %s: %w", report.RunID, err)
	}
	w.logger.Debug("report published", "topic", w.writer.Topic, "run_id", report.RunID)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Report into a Kafka message.
func serializeToMessage(report domain.Report) (kafkago.Message, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(report.RunID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "unit_guess", Value: []byte(report.Unit.Unit)},
			{Key: "analyzed_at", Value: []byte(report.AnalyzedAt.Format(time.RFC3339))},
		},
	}, nil
}
