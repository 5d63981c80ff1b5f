package models

// CampusDocument is the exchange form of the full spatial data model:
// buildings, the per-building per-floor room lists, and the selection cursor.
// `buildings` and `rooms` are required at the top level; the selection fields
// are optional and normalized on import.
type CampusDocument struct {
	Buildings       []Building                   `json:"buildings"`
	Rooms           map[string]map[string][]Room `json:"rooms"`
	CurrentBuilding string                       `json:"currentBuilding,omitempty"`
	CurrentFloor    string                       `json:"currentFloor,omitempty"`
}
