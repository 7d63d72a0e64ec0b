package model

import "fmt"

type Vehicle struct {
	ID        string `json:"_id" bson:"_id,omitempty"`
	VehicleID string `json:"vehicleId" bson:"vehicleId"`
	Type      string `json:"type" bson:"type"`
	Model     string `json:"model" bson:"model"`
	Seats     int    `json:"seats" bson:"seats"`
	Status    string `json:"status,omitempty" bson:"status,omitempty"`
}

func (v Vehicle) DisplayName() string {
	if v.Type == "" {
		return v.Model
	}
	if v.Model == "" {
		return v.Type
	}
	return v.Type + " " + v.Model
}

func (v Vehicle) DisplayDescription() string {
	if v.Seats <= 0 {
		return v.VehicleID
	}
	return fmt.Sprintf("%d seats (%s)", v.Seats, v.VehicleID)
}

// Usable is looser than "available": a booked vehicle still backs its
// catalog options, a vehicle in maintenance does not.
func (v Vehicle) Usable() bool {
	return v.Status != StatusInactive && v.Status != StatusMaintenance
}
