package model

type Employee struct {
	ID            string `json:"_id" bson:"_id,omitempty"`
	Name          string `json:"name" bson:"name"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Position      string `json:"position,omitempty" bson:"position,omitempty"`
	Status        string `json:"status,omitempty" bson:"status,omitempty"`
}

func (e Employee) DisplayName() string { return e.Name }

func (e Employee) DisplayDescription() string { return e.Position }

func (e Employee) Usable() bool { return e.Status != StatusInactive }

// Phone prefers phoneNumber and falls back to the older contactNumber field.
func (e Employee) Phone() string {
	if e.PhoneNumber != "" {
		return e.PhoneNumber
	}
	return e.ContactNumber
}
