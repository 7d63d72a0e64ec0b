package model

type HotelAvailability struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	Location    string             `json:"location,omitempty"`
	Description string             `json:"description,omitempty"`
	Rooms       []RoomAvailability `json:"rooms"`
}

type AvailableItems struct {
	Agents   []Employee          `json:"agents"`
	Hotels   []HotelAvailability `json:"hotels"`
	Vehicles []Vehicle           `json:"vehicles"`
}
