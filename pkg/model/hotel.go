package model

type Hotel struct {
	ID             string             `json:"_id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Location       string             `json:"location,omitempty" bson:"location,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	RoomTypes      []string           `json:"roomTypes" bson:"roomTypes"`
	RoomPrices     map[string]float64 `json:"roomPrices" bson:"roomPrices"`
	RoomQuantities map[string]int     `json:"roomQuantities" bson:"roomQuantities"`
	AvailableRooms map[string]int     `json:"availableRooms,omitempty" bson:"availableRooms,omitempty"`
	Status         string             `json:"status,omitempty" bson:"status,omitempty"`
}

type RoomAvailability struct {
	RoomType       string  `json:"roomType"`
	Price          float64 `json:"price"`
	AvailableCount int     `json:"availableCount"`
}

func (h Hotel) DisplayName() string { return h.Name }

func (h Hotel) DisplayDescription() string {
	if h.Description != "" {
		return h.Description
	}
	return h.Location
}

func (h Hotel) Usable() bool { return h.Status != StatusInactive }

// AvailableRoomTypes lists room types with a positive remaining count, in
// roomTypes order. availableRooms wins over roomQuantities when it has an
// entry for the type.
func (h Hotel) AvailableRoomTypes() []RoomAvailability {
	rooms := make([]RoomAvailability, 0, len(h.RoomTypes))
	for _, roomType := range h.RoomTypes {
		count, ok := h.AvailableRooms[roomType]
		if !ok {
			count = h.RoomQuantities[roomType]
		}
		if count <= 0 {
			continue
		}
		rooms = append(rooms, RoomAvailability{
			RoomType:       roomType,
			Price:          h.RoomPrices[roomType],
			AvailableCount: count,
		})
	}
	return rooms
}
