package notifications

import (
	"context"
	"fmt"

	"wanderbook/pkg/kafka"
	kafka_middleware "wanderbook/pkg/kafka/middleware"
	"wanderbook/pkg/logger"
)

const eventSource = "custom-packages"

type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaNotifier publishes booking.created events keyed by booking id. The
// notifier worker consumes them and sends the email.
type KafkaNotifier struct {
	producer Publisher
	metrics  *kafka_middleware.Metrics
	log      *logger.Logger
}

// NewKafkaNotifier wraps producer. metrics may be nil.
func NewKafkaNotifier(producer Publisher, metrics *kafka_middleware.Metrics, log *logger.Logger) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, metrics: metrics, log: log}
}

func (n *KafkaNotifier) NotifyBookingCreated(ctx context.Context, b BookingNotification) error {
	msg, err := NewBookingCreatedMessage(b)
	if err != nil {
		return err
	}
	if err := n.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", EventBookingCreated, err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	if n.metrics != nil {
		n.log.Info("Booking event producer metrics", n.metrics.Snapshot().Fields()...)
	}
	return n.producer.Close()
}

func NewBookingCreatedMessage(b BookingNotification) (kafka.Message, error) {
	return kafka.NewMessage().
		WithKey(b.BookingID).
		WithValue(b).
		WithEventType(EventBookingCreated).
		WithSchemaVersion(bookingCreatedSchemaVersion).
		WithSource(eventSource).
		WithCorrelationID(b.BookingID).
		Build()
}
