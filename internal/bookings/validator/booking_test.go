package validator

import (
	"errors"
	"testing"
	"time"

	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func validInput() model.BookingInput {
	return model.BookingInput{
		CustomerName: "Wanjiru Kamau",
		Email:        "wanjiru@example.com",
		PhoneNumber:  "+254712345678",
		TravelDate:   "2026-12-20",
		SelectedOptions: map[string]model.OptionSnapshotInput{
			"Hotels": {ID: "o1", Name: "Serena", Price: price("10")},
		},
		TotalPrice: decimal.NewNullDecimal(decimal.NewFromInt(10)),
	}
}

func TestValidate(t *testing.T) {
	v := NewBookingValidator(logger.NewNop())

	tests := []struct {
		name        string
		mutate      func(in *model.BookingInput)
		wantErr     bool
		wantField   string
		wantMissing bool
	}{
		{name: "valid", mutate: func(in *model.BookingInput) {}},
		{name: "missing customer name", mutate: func(in *model.BookingInput) { in.CustomerName = "" }, wantErr: true, wantField: "customerName", wantMissing: true},
		{name: "missing email", mutate: func(in *model.BookingInput) { in.Email = "" }, wantErr: true, wantField: "email", wantMissing: true},
		{name: "missing phone", mutate: func(in *model.BookingInput) { in.PhoneNumber = "" }, wantErr: true, wantField: "phoneNumber", wantMissing: true},
		{name: "missing travel date", mutate: func(in *model.BookingInput) { in.TravelDate = "" }, wantErr: true, wantField: "travelDate", wantMissing: true},
		{name: "nil selections", mutate: func(in *model.BookingInput) { in.SelectedOptions = nil }, wantErr: true, wantField: "selectedOptions", wantMissing: true},
		{name: "empty selections", mutate: func(in *model.BookingInput) { in.SelectedOptions = map[string]model.OptionSnapshotInput{} }, wantErr: true, wantField: "selectedOptions", wantMissing: true},
		{name: "missing total", mutate: func(in *model.BookingInput) { in.TotalPrice = decimal.NullDecimal{} }, wantErr: true, wantField: "totalPrice", wantMissing: true},
		{name: "missing selection price", mutate: func(in *model.BookingInput) {
			in.SelectedOptions["Hotels"] = model.OptionSnapshotInput{ID: "o1", Name: "Serena"}
		}, wantErr: true, wantField: "selectedOptions[Hotels].price", wantMissing: true},
		{name: "negative selection price", mutate: func(in *model.BookingInput) {
			in.SelectedOptions["Hotels"] = model.OptionSnapshotInput{ID: "o1", Name: "Serena", Price: price("-5")}
		}, wantErr: true, wantField: "selectedOptions[Hotels].price", wantMissing: false},
		{name: "negative total", mutate: func(in *model.BookingInput) { in.TotalPrice = decimal.NewNullDecimal(decimal.NewFromInt(-1)) }, wantErr: true, wantField: "totalPrice", wantMissing: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(&in)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tt.wantField {
				t.Errorf("expected a single error on %q, got %v", tt.wantField, verrs)
			}
			if verrs.Missing() != tt.wantMissing {
				t.Errorf("expected Missing()=%v, got %v", tt.wantMissing, verrs.Missing())
			}
		})
	}
}

func TestParseTravelDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2026-12-20", want: time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)},
		{in: "2026-12-20T08:30:00Z", want: time.Date(2026, 12, 20, 8, 30, 0, 0, time.UTC)},
		{in: "2026-12-20T11:30:00+03:00", want: time.Date(2026, 12, 20, 8, 30, 0, 0, time.UTC)},
		{in: "20/12/2026", wantErr: true},
		{in: "next week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTravelDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
