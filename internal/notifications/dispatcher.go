package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "wanderbook/pkg/errors"
	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"
)

// Dispatcher sends booking confirmations in the background. A request never
// waits for delivery and never sees its failure.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	log      *logger.Logger
	wg       sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(notifier Notifier, timeout time.Duration, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		log:      log,
	}
}

// Dispatch drops the notification with a warning once Close has started.
func (d *Dispatcher) Dispatch(booking *model.Booking) {
	n := NewBookingNotification(booking)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.log.Warn("Dispatcher closed, dropping booking notification", "booking_id", n.BookingID)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				d.log.Error("Booking notification panicked",
					"booking_id", n.BookingID,
					"panic", rec,
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.notifier.NotifyBookingCreated(ctx, n); err != nil {
			d.log.Error("Booking notification failed",
				"booking_id", n.BookingID,
				"error", apperrors.Upstream("notification", err),
			)
			return
		}
		d.log.Debug("Booking notification handed off", "booking_id", n.BookingID)
	}()
}

// Wait blocks until every dispatched notification has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close waits for in-flight notifications, bounded by timeout, then closes
// the backend.
func (d *Dispatcher) Close(timeout time.Duration) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		d.log.Warn("Timed out waiting for pending notifications", "timeout", timeout)
	}

	if err := d.notifier.Close(); err != nil {
		return fmt.Errorf("failed to close notifier: %w", err)
	}
	return nil
}
