package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/tcipi-service/internal/config"
	"github.com/couchcryptid/tcipi-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces station readings to a Kafka topic.
// It implements feed.BatchPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured readings topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishBatch writes one message per reading in a single WriteMessages call.
// Messages are keyed by station name so a station's history stays on one
// partition.
func (w *Writer) PublishBatch(ctx context.Context, batch domain.StationBatch) error {
	if len(batch.Readings) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(batch.Readings))
	for i := range batch.Readings {
		msg, err := serializeToMessage(batch, batch.Readings[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d readings: %w", len(msgs), err)
	}
	w.logger.Debug("station batch published", "batch_id", batch.ID, "messages", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a StationReading into a Kafka message.
func serializeToMessage(batch domain.StationBatch, reading domain.StationReading) (kafkago.Message, error) {
	data, err := json.Marshal(reading)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize station reading: %w", err)
	}
	band := reading.Band
	if !reading.Available {
		band = domain.BandUnknown
	}
	return kafkago.Message{
		Key:   []byte(reading.Station.Name),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "batch_id", Value: []byte(batch.ID)},
			{Key: "band", Value: []byte(band)},
			{Key: "fetched_at", Value: []byte(batch.FetchedAt.Format(time.RFC3339))},
		},
	}, nil
}
