package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wanderbook/pkg/logger"

	"github.com/hibiken/asynq"
)

const (
	QueueNotifications   = "notifications"
	confirmationMaxRetry = 5
	confirmationTimeout  = 2 * time.Minute
)

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// AsynqNotifier queues the email on Redis; asynq owns the retries.
type AsynqNotifier struct {
	client Enqueuer
	log    *logger.Logger
}

func NewAsynqNotifier(client Enqueuer, log *logger.Logger) *AsynqNotifier {
	return &AsynqNotifier{client: client, log: log}
}

func (n *AsynqNotifier) NotifyBookingCreated(ctx context.Context, b BookingNotification) error {
	task, err := NewBookingConfirmationTask(b)
	if err != nil {
		return err
	}

	info, err := n.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", TaskBookingConfirmation, err)
	}

	n.log.Debug("Booking confirmation queued",
		"booking_id", b.BookingID,
		"task_id", info.ID,
		"queue", info.Queue,
	)
	return nil
}

func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}

func NewBookingConfirmationTask(b BookingNotification) (*asynq.Task, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking confirmation: %w", err)
	}
	return asynq.NewTask(TaskBookingConfirmation, payload,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(confirmationMaxRetry),
		asynq.Timeout(confirmationTimeout),
	), nil
}
