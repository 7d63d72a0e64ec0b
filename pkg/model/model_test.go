package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBookingStatus_IsValid(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingPending, true},
		{BookingApproved, true},
		{BookingRejected, true},
		{"not-a-status", false},
		{"Approved", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	if BookingPending.IsTerminal() {
		t.Error("pending must not be terminal")
	}
	if !BookingApproved.IsTerminal() || !BookingRejected.IsTerminal() {
		t.Error("approved and rejected are terminal")
	}
}

func TestParseResourceKind(t *testing.T) {
	for _, kind := range ResourceKinds() {
		got, ok := ParseResourceKind(string(kind))
		if !ok || got != kind {
			t.Errorf("ParseResourceKind(%q) = %q, %v", kind, got, ok)
		}
	}

	if _, ok := ParseResourceKind("employee"); ok {
		t.Error("kinds are case sensitive")
	}
	if _, ok := ParseResourceKind("Package"); ok {
		t.Error("Package is not a resource kind")
	}
}

func TestResource_Usable(t *testing.T) {
	tests := []struct {
		name     string
		resource Resource
		want     bool
	}{
		{"active employee", Employee{Status: StatusActive}, true},
		{"employee without status", Employee{}, true},
		{"inactive employee", Employee{Status: StatusInactive}, false},
		{"active hotel", Hotel{Status: StatusActive}, true},
		{"inactive hotel", Hotel{Status: StatusInactive}, false},
		{"available vehicle", Vehicle{Status: StatusAvailable}, true},
		{"booked vehicle", Vehicle{Status: "booked"}, true},
		{"vehicle in maintenance", Vehicle{Status: StatusMaintenance}, false},
		{"inactive vehicle", Vehicle{Status: StatusInactive}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resource.Usable(); got != tt.want {
				t.Errorf("Usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHotel_AvailableRoomTypes(t *testing.T) {
	tests := []struct {
		name  string
		hotel Hotel
		want  []RoomAvailability
	}{
		{
			name: "zero quantity excludes the room type",
			hotel: Hotel{
				RoomTypes:      []string{"double"},
				RoomPrices:     map[string]float64{"double": 100},
				RoomQuantities: map[string]int{"double": 0},
			},
			want: nil,
		},
		{
			name: "availableRooms overrides roomQuantities",
			hotel: Hotel{
				RoomTypes:      []string{"single", "double"},
				RoomPrices:     map[string]float64{"single": 60, "double": 100},
				RoomQuantities: map[string]int{"single": 5, "double": 3},
				AvailableRooms: map[string]int{"single": 0},
			},
			want: []RoomAvailability{{RoomType: "double", Price: 100, AvailableCount: 3}},
		},
		{
			name: "keeps roomTypes order",
			hotel: Hotel{
				RoomTypes:      []string{"suite", "single"},
				RoomPrices:     map[string]float64{"suite": 300, "single": 60},
				RoomQuantities: map[string]int{"suite": 1, "single": 2},
			},
			want: []RoomAvailability{
				{RoomType: "suite", Price: 300, AvailableCount: 1},
				{RoomType: "single", Price: 60, AvailableCount: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.hotel.AvailableRoomTypes()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rooms, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("room %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSnapshotTotal(t *testing.T) {
	selected := map[string]OptionSnapshot{
		"Travel Agents": {ID: "a", Name: "Agent", Price: 10},
		"Vehicles":      {ID: "b", Name: "Van", Price: 25},
	}

	if got := SnapshotTotal(selected); !got.Equal(decimal.NewFromInt(35)) {
		t.Errorf("SnapshotTotal() = %s, want 35", got)
	}

	fractions := map[string]OptionSnapshot{
		"A": {Price: 0.1},
		"B": {Price: 0.2},
	}
	if got := SnapshotTotal(fractions); !got.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("SnapshotTotal() = %s, want 0.3", got)
	}

	if got := SnapshotTotal(nil); !got.IsZero() {
		t.Errorf("SnapshotTotal(nil) = %s, want 0", got)
	}
}

func TestEmployee_Phone(t *testing.T) {
	if got := (Employee{ContactNumber: "+911234"}).Phone(); got != "+911234" {
		t.Errorf("Phone() = %q, want contactNumber fallback", got)
	}
	if got := (Employee{PhoneNumber: "+91999", ContactNumber: "+911234"}).Phone(); got != "+91999" {
		t.Errorf("Phone() = %q, want phoneNumber", got)
	}
}
