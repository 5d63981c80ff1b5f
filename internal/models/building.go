package models

// GeoPoint is a geographic coordinate in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoBounds is an axis-aligned geographic rectangle given by its corners.
type GeoBounds struct {
	Southwest GeoPoint `json:"southwest"`
	Northeast GeoPoint `json:"northeast"`
}

// Building represents a campus building: its floors in display order and the
// geographic anchor used for map centring and on-campus checks.
type Building struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Floors      []string   `json:"floors"`
	Coordinates GeoPoint   `json:"coordinates"`
	Bounds      *GeoBounds `json:"bounds,omitempty"`
}

// HasFloor reports whether id is one of the building's listed floors.
func (b Building) HasFloor(id string) bool {
	for _, f := range b.Floors {
		if f == id {
			return true
		}
	}
	return false
}
