package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	}
	return false
}

// IsTerminal reports whether staff already decided on the booking. Nothing
// enforces it; the status update only logs when a terminal status is
// overwritten.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingApproved || s == BookingRejected
}

// OptionSnapshot is the copy of an option taken when the booking is made.
// It is never re-read from the catalog.
type OptionSnapshot struct {
	ID    string  `json:"_id" bson:"_id"`
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

type Booking struct {
	ID              string                    `json:"_id" bson:"_id,omitempty"`
	CustomerName    string                    `json:"customerName" bson:"customerName"`
	Email           string                    `json:"email" bson:"email"`
	PhoneNumber     string                    `json:"phoneNumber" bson:"phoneNumber"`
	TravelDate      time.Time                 `json:"travelDate" bson:"travelDate"`
	AdditionalNotes string                    `json:"additionalNotes" bson:"additionalNotes"`
	SelectedOptions map[string]OptionSnapshot `json:"selectedOptions" bson:"selectedOptions"`
	TotalPrice      float64                   `json:"totalPrice" bson:"totalPrice"`
	Status          BookingStatus             `json:"status" bson:"status"`
	CreatedAt       time.Time                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt" bson:"updatedAt"`
}

// OptionSnapshotInput is one submitted selection. Price accepts a JSON number
// or a numeric string, like the booking total.
type OptionSnapshotInput struct {
	ID    string              `json:"_id"`
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

type BookingInput struct {
	CustomerName    string                         `json:"customerName" validate:"required"`
	Email           string                         `json:"email" validate:"required"`
	PhoneNumber     string                         `json:"phoneNumber" validate:"required"`
	TravelDate      string                         `json:"travelDate" validate:"required"`
	AdditionalNotes *string                        `json:"additionalNotes"`
	SelectedOptions map[string]OptionSnapshotInput `json:"selectedOptions" validate:"required,min=1,dive"`
	TotalPrice      decimal.NullDecimal            `json:"totalPrice"`
}

type BookingStatusUpdate struct {
	Status string `json:"status"`
}

// SnapshotTotal sums the snapshot prices in decimal so the comparison with
// the submitted total is not thrown off by float rounding.
func SnapshotTotal(selected map[string]OptionSnapshot) decimal.Decimal {
	total := decimal.Zero
	for _, snap := range selected {
		total = total.Add(decimal.NewFromFloat(snap.Price))
	}
	return total
}
