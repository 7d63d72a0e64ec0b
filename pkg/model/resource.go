package model

// ResourceKind is the closed set of collections an option may point at
// through its itemModel field.
type ResourceKind string

const (
	ResourceEmployee ResourceKind = "Employee"
	ResourceHotel    ResourceKind = "Hotel"
	ResourceVehicle  ResourceKind = "Vehicle"
)

var resourceKinds = []ResourceKind{ResourceEmployee, ResourceHotel, ResourceVehicle}

func ResourceKinds() []ResourceKind {
	out := make([]ResourceKind, len(resourceKinds))
	copy(out, resourceKinds)
	return out
}

func (k ResourceKind) IsValid() bool {
	for _, kind := range resourceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func ParseResourceKind(s string) (ResourceKind, bool) {
	kind := ResourceKind(s)
	return kind, kind.IsValid()
}

// ItemRef is the tagged reference an option carries: the kind selects the
// collection, the id is the key inside it.
type ItemRef struct {
	ItemID    string
	ItemModel ResourceKind
}

// Resource is what the availability resolver needs from any referenced
// record, whatever its collection.
type Resource interface {
	DisplayName() string
	DisplayDescription() string
	Usable() bool
}

const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
)
