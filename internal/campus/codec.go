package campus

import (
	"encoding/json"
	"fmt"

	"github.com/cardinalnav/campus-backend-go/internal/models"
)

// Export serializes the full data model to an indented JSON document.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.Document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export campus document: %w", err)
	}
	return data, nil
}

// Import parses and validates a campus JSON document and returns the
// replacement store. Malformed JSON and a missing `buildings` or `rooms`
// top-level field both fail with ErrInvalidDocument. Import builds a whole
// new model; callers swap it in atomically, so a failed import leaves the
// live model untouched.
func Import(data []byte) (*Store, error) {
	var raw struct {
		Buildings       *[]models.Building                   `json:"buildings"`
		Rooms           *map[string]map[string][]models.Room `json:"rooms"`
		CurrentBuilding string                               `json:"currentBuilding"`
		CurrentFloor    string                               `json:"currentFloor"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if raw.Buildings == nil {
		return nil, fmt.Errorf("%w: missing required field %q", ErrInvalidDocument, "buildings")
	}
	if raw.Rooms == nil {
		return nil, fmt.Errorf("%w: missing required field %q", ErrInvalidDocument, "rooms")
	}
	return NewStore(models.CampusDocument{
		Buildings:       *raw.Buildings,
		Rooms:           *raw.Rooms,
		CurrentBuilding: raw.CurrentBuilding,
		CurrentFloor:    raw.CurrentFloor,
	})
}
