// Package notifier dispatches customer email as jobs on a Kafka topic
// consumed by the mail worker. Delivery is best effort: the order core
// never waits on or rolls back for a notification.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Yaseeru/glowgroove/internal/config"

	"github.com/segmentio/kafka-go"
)

type mailJob struct {
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	QueuedAt time.Time `json:"queued_at"`
}

type kafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafka(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (n *kafkaNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	value, err := json.Marshal(mailJob{
		To:       recipient,
		Subject:  subject,
		Body:     body,
		QueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipient),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish mail job: %w", err)
	}

	n.logger.DebugContext(ctx, "mail job queued", slog.String("recipient", recipient))
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
