package notifications

import (
	"context"

	"wanderbook/pkg/logger"
)

// LogNotifier only records the notification. It is the default backend for
// local development.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyBookingCreated(ctx context.Context, b BookingNotification) error {
	n.log.Info("Booking confirmation",
		"booking_id", b.BookingID,
		"email", b.Email,
		"travel_date", b.TravelDate,
		"items", len(b.Items),
		"total_price", b.TotalPrice,
	)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
