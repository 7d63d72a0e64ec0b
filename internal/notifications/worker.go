package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"wanderbook/pkg/kafka"
	"wanderbook/pkg/logger"

	"github.com/hibiken/asynq"
)

// Worker is the consuming side of the kafka and asynq backends. Both hand
// the decoded notification to the same sender, normally a Mailer.
type Worker struct {
	sender Notifier
	log    *logger.Logger
}

func NewWorker(sender Notifier, log *logger.Logger) *Worker {
	return &Worker{sender: sender, log: log}
}

// HandleMessage is a kafka.MessageHandler. Undecodable events are permanent
// failures and go straight to the DLQ; delivery failures are retried.
func (w *Worker) HandleMessage(ctx context.Context, msg kafka.Message) error {
	if eventType := msg.GetEventType(); eventType != "" && eventType != EventBookingCreated {
		w.log.Debug("Skipping unrelated event", "event_type", eventType, "event_id", msg.GetEventID())
		return nil
	}

	var n BookingNotification
	if err := msg.DecodeValue(&n); err != nil {
		return kafka.NewPermanentError("failed to decode booking notification", err)
	}

	if err := w.sender.NotifyBookingCreated(ctx, n); err != nil {
		return kafka.NewTransientError("failed to deliver booking notification", err)
	}
	return nil
}

// HandleTask processes asynq booking confirmation tasks.
func (w *Worker) HandleTask(ctx context.Context, task *asynq.Task) error {
	var n BookingNotification
	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		w.log.Error("Invalid booking confirmation payload", "error", err)
		return fmt.Errorf("failed to decode booking notification: %v: %w", err, asynq.SkipRetry)
	}

	if err := w.sender.NotifyBookingCreated(ctx, n); err != nil {
		w.log.Warn("Booking confirmation delivery failed",
			"booking_id", n.BookingID,
			"error", err,
		)
		return err
	}
	return nil
}

func (w *Worker) ServeMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskBookingConfirmation, w.HandleTask)
	return mux
}
