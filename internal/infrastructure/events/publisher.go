// Package events publishes stored access events to Kafka for downstream
// consumers (alerting, archival). Publishing is best-effort: a broker outage
// must never fail the write path that recorded the event.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/tagpoint/rfid-admin/internal/config"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// Publisher delivers recorded access events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event *models.AccessEvent) error
	Close() error
}

// KafkaPublisher writes access events to a Kafka topic, keyed by card UID so
// one card's scans stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger logger.Logger
}

// NewKafkaPublisher creates a publisher for the configured topic.
func NewKafkaPublisher(cfg config.KafkaConfig, log logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
		BatchTimeout: 100 * time.Millisecond,
	}
	return &KafkaPublisher{
		writer: writer,
		logger: log.With(logger.String("component", "kafka_publisher")),
	}
}

// Publish sends one event. Errors are logged and returned, but callers on
// the ingest path treat them as non-fatal.
func (p *KafkaPublisher) Publish(ctx context.Context, event *models.AccessEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal access event", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CardUID),
		Value: payload,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to publish access event", err,
			logger.String("card_uid", event.CardUID),
			logger.String("reader_id", event.ReaderID),
		)
	}
	return err
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNopPublisher returns a publisher that discards everything. Used when
// Kafka is disabled and in tests.
func NewNopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event *models.AccessEvent) error { return nil }
func (noopPublisher) Close() error                                                 { return nil }
