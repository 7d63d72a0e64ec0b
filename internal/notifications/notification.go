package notifications

import (
	"context"
	"sort"
	"time"

	"wanderbook/pkg/model"
)

const (
	EventBookingCreated         = "booking.created"
	TaskBookingConfirmation     = "email:booking_confirmation"
	bookingCreatedSchemaVersion = "1"
)

// Notifier delivers the confirmation for a newly created booking.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, n BookingNotification) error
	Close() error
}

type LineItem struct {
	Category string  `json:"category"`
	OptionID string  `json:"optionId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// BookingNotification is the payload shared by every backend and by the
// worker that eventually sends the email.
type BookingNotification struct {
	BookingID       string     `json:"bookingId"`
	CustomerName    string     `json:"customerName"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	TravelDate      time.Time  `json:"travelDate"`
	AdditionalNotes string     `json:"additionalNotes,omitempty"`
	Items           []LineItem `json:"items"`
	TotalPrice      float64    `json:"totalPrice"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func NewBookingNotification(b *model.Booking) BookingNotification {
	categories := make([]string, 0, len(b.SelectedOptions))
	for category := range b.SelectedOptions {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	items := make([]LineItem, 0, len(categories))
	for _, category := range categories {
		snap := b.SelectedOptions[category]
		items = append(items, LineItem{
			Category: category,
			OptionID: snap.ID,
			Name:     snap.Name,
			Price:    snap.Price,
		})
	}

	return BookingNotification{
		BookingID:       b.ID,
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		PhoneNumber:     b.PhoneNumber,
		TravelDate:      b.TravelDate,
		AdditionalNotes: b.AdditionalNotes,
		Items:           items,
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt,
	}
}
